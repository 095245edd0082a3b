package deck

import (
	"sort"
	"strings"
)

// Hand represents an ordered collection of cards held by a participant
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Remove removes the specified card from the hand
// Returns false if the hand does not hold the card
func (h *Hand) Remove(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

// FirstCard returns the first card in the hand or nil if the hand is empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the hand is empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

// String renders the hand for human consumption (e.g., "A♠ 10♣")
func (h Hand) String() string {
	cards := make([]string, len(h))
	for i, c := range h {
		cards[i] = c.String()
	}

	return strings.Join(cards, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// SortedByRank returns a copy of the hand ordered low-to-high.
// Rank is the primary key; suits break ties.
func (h Hand) SortedByRank() Hand {
	h2 := h.Clone()
	sort.Slice(h2, func(i, j int) bool {
		return h2[i].Less(h2[j])
	})

	return h2
}
