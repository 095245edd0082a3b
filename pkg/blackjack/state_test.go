package blackjack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_State(t *testing.T) {
	a := assert.New(t)
	game := testGame(t, "alice", "bob")

	gs := game.State()
	a.False(gs.HandInProgress)
	a.Equal("", gs.CurrentTurn)
	a.Nil(gs.DealerUpCard)
	a.Empty(gs.Participants)
	a.Equal([]string{"alice", "bob"}, gs.Waiting)
	a.Equal(52, gs.CardsLeft)

	stackDeck(game, "10c", "7c", "10h", "8h", "10s", "9s")
	require.NoError(t, game.StartHand())

	gs = game.State()
	a.True(gs.HandInProgress)
	a.Equal("alice", gs.CurrentTurn)
	a.Equal(card("10c"), gs.DealerUpCard)

	// the hole card stays hidden while players still have turns
	a.Nil(gs.DealerHand)
	a.Equal(0, gs.DealerScore)

	require.Equal(t, 2, len(gs.Participants))
	a.Equal("alice", gs.Participants[0].Name)
	a.Equal(18, gs.Participants[0].Score)
	a.Equal("bob", gs.Participants[1].Name)
	a.Equal(19, gs.Participants[1].Score)
	a.Empty(gs.Waiting)
	a.Equal(46, gs.CardsLeft)

	require.NoError(t, game.Stand("alice"))
	require.NoError(t, game.Stand("bob"))
	require.NoError(t, game.DealerTurn())

	gs = game.State()
	a.False(gs.HandInProgress)
	a.Equal("", gs.CurrentTurn)
	a.Equal(2, len(gs.DealerHand))
	a.Equal(17, gs.DealerScore)
}

func TestGameState_json(t *testing.T) {
	game := testGame(t, "alice")

	b, err := json.Marshal(game.State())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))

	assert.Equal(t, false, decoded["handInProgress"])
	assert.NotContains(t, string(b), "dealerHand")
}
