package blackjack

import (
	"testing"
	"time"

	"saloon-blackjack-server/pkg/deck"
)

// identityRNG makes Shuffle a no-op so tests can stack the deck
type identityRNG struct{}

func (identityRNG) Intn(n int) int {
	return n - 1
}

func card(s string) *deck.Card {
	return deck.CardFromString(s)
}

func hand(s string) deck.Hand {
	return deck.Hand(deck.CardsFromString(s))
}

func testOptions() Options {
	return Options{
		TickInterval:     time.Second * 5,
		TimeBetweenHands: time.Second * 5,
		AmbientPeriod:    time.Second * 10,
		MaxSeats:         seatsLimit,
		Rand:             identityRNG{},
	}
}

func testGame(t *testing.T, names ...string) *Game {
	t.Helper()

	game, err := NewGame(testOptions())
	if err != nil {
		t.Fatalf("could not create game: %v", err)
	}

	for _, name := range names {
		if err := game.Seat(name); err != nil {
			t.Fatalf("could not seat %s: %v", name, err)
		}
	}

	return game
}

// stackDeck rearranges the deck so the named cards are drawn in the given order
func stackDeck(g *Game, cards ...string) {
	stacked := make([]*deck.Card, len(cards))
	for i, s := range cards {
		stacked[i] = card(s)
	}

	rest := make([]*deck.Card, 0, len(g.deck.Cards))
	for _, c := range g.deck.Cards {
		found := false
		for _, s := range stacked {
			if c.Equal(s) {
				found = true
				break
			}
		}

		if !found {
			rest = append(rest, c)
		}
	}

	for i := len(stacked) - 1; i >= 0; i-- {
		rest = append(rest, stacked[i])
	}

	g.deck.Cards = rest
}

func messageText(messages []*Message) []string {
	out := make([]string, len(messages))
	for i, m := range messages {
		out[i] = m.Message
	}

	return out
}

// cardsInPlay counts the cards across the deck, the dealer, and every hand
func cardsInPlay(g *Game) int {
	count := g.deck.CardsLeft() + len(g.dealer.hand)
	for _, p := range g.participants {
		count += len(p.hand)
	}
	for _, p := range g.waiting {
		count += len(p.hand)
	}

	return count
}
