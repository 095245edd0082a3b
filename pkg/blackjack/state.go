package blackjack

import "saloon-blackjack-server/pkg/deck"

// GameState is the overall state of the table
// These values must be safe for someone to snoop on
type GameState struct {
	HandInProgress bool   `json:"handInProgress"`
	CurrentTurn    string `json:"currentTurn,omitempty"`

	// DealerUpCard is the dealer's face-up card
	DealerUpCard *deck.Card `json:"dealerUpCard,omitempty"`

	// DealerHand is only populated once the dealer's hole card is public
	DealerHand  []*deck.Card `json:"dealerHand,omitempty"`
	DealerScore int          `json:"dealerScore,omitempty"`

	Participants []*ParticipantState `json:"participants"`
	Waiting      []string            `json:"waiting"`
	CardsLeft    int                 `json:"cardsLeft"`
}

// ParticipantState is the public state of a single seat
type ParticipantState struct {
	Name  string       `json:"name"`
	Cards []*deck.Card `json:"cards"`
	Score int          `json:"score"`
}

// State returns a snapshot suitable for broadcasting to connected clients.
// The dealer's hole card stays hidden while players still have turns.
func (g *Game) State() *GameState {
	participants := make([]*ParticipantState, len(g.participants))
	for i, p := range g.participants {
		participants[i] = &ParticipantState{
			Name:  p.Name,
			Cards: p.Hand(),
			Score: p.Score(),
		}
	}

	waiting := make([]string, len(g.waiting))
	for i, p := range g.waiting {
		waiting[i] = p.Name
	}

	gs := &GameState{
		HandInProgress: g.HandInProgress(),
		CurrentTurn:    g.WhoseTurn(),
		DealerUpCard:   g.dealer.hand.FirstCard(),
		Participants:   participants,
		Waiting:        waiting,
		CardsLeft:      g.deck.CardsLeft(),
	}

	if !g.IsPlayerTurn() && len(g.dealer.hand) > 0 {
		gs.DealerHand = g.dealer.Hand()
		gs.DealerScore = g.dealer.Score()
	}

	return gs
}
