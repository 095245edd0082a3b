package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"saloon-blackjack-server/internal/rng"
)

// ErrEndOfDeck is an error when a draw is attempted and there are not enough cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrCardNotInHand is an error when a card is returned from a hand that doesn't hold it
var ErrCardNotInHand = errors.New("card is not in hand")

// Deck represents the draw pile.
// Cards only ever move between the deck and hands; the 52 cards built by
// New() are conserved for the lifetime of the deck.
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := 2; rank <= 14; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle performs an in-place Fisher-Yates shuffle of the remaining cards.
// It never rebuilds the deck, so cards held in hands stay out of the draw pile.
func (d *Deck) Shuffle(r rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := r.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the top card of the deck
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// Deal moves count cards from the top of the deck to the end of the hand.
// The move is all-or-nothing: if fewer than count cards remain, ErrEndOfDeck
// is returned and neither the deck nor the hand is modified.
func (d *Deck) Deal(hand *Hand, count int) error {
	if !d.CanDraw(count) {
		return ErrEndOfDeck
	}

	for i := 0; i < count; i++ {
		card, err := d.Draw()
		if err != nil {
			// cannot happen after the CanDraw check
			return err
		}

		hand.AddCard(card)
	}

	return nil
}

// Return moves the specified card from the hand back onto the deck
func (d *Deck) Return(hand *Hand, card *Card) error {
	if !hand.Remove(card) {
		return ErrCardNotInHand
	}

	d.Cards = append(d.Cards, card)
	return nil
}

// ReturnAll moves every card in the hand back onto the deck and empties the hand
func (d *Deck) ReturnAll(hand *Hand) {
	d.Cards = append(d.Cards, *hand...)
	*hand = (*hand)[:0]
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
