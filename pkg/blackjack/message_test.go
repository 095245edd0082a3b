package blackjack

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestGame_Drain(t *testing.T) {
	a := assert.New(t)
	game := testGame(t)

	a.NoError(game.Seat("alice"))
	a.NoError(game.Seat("bob"))

	messages := game.Drain()
	a.Equal(2, len(messages))
	a.Equal("Player alice sits down and will join the next hand.", messages[0].Message)
	a.Equal("Player bob sits down and will join the next hand.", messages[1].Message)
	a.NotEmpty(messages[0].UUID)
	a.NotEqual(messages[0].UUID, messages[1].UUID)
	a.False(messages[0].Time.IsZero())

	// a second drain without new activity comes back empty
	a.Empty(game.Drain())
}
