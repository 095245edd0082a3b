package blackjack

import (
	"fmt"

	"saloon-blackjack-server/pkg/deck"
)

// dealerName is the name reserved for the house
const dealerName = "Dealer"

// Participant is a single seat at the table.
// The dealer uses the same representation with the isDealer role flag set;
// it is never part of the seated list or the turn order.
type Participant struct {
	// Name uniquely identifies the participant at the table
	Name string `json:"name"`

	// the cards currently held; owned exclusively by this record
	hand deck.Hand

	isDealer bool
}

func newParticipant(name string) *Participant {
	return &Participant{Name: name}
}

func newDealer() *Participant {
	return &Participant{
		Name:     dealerName,
		isDealer: true,
	}
}

// Hand returns a copy of the participant's cards in the order they were dealt
func (p *Participant) Hand() deck.Hand {
	return p.hand.Clone()
}

// Score returns the blackjack value of the participant's hand
func (p *Participant) Score() int {
	return Score(p.hand)
}

func (p *Participant) String() string {
	if p.isDealer {
		return p.Name
	}

	return fmt.Sprintf("Player %s", p.Name)
}
