package blackjack

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParticipant_String(t *testing.T) {
	assert.Equal(t, "Player alice", newParticipant("alice").String())
	assert.Equal(t, "Dealer", newDealer().String())
}

func TestParticipant_Hand(t *testing.T) {
	a := assert.New(t)

	p := newParticipant("alice")
	a.Empty(p.Hand())

	p.hand = hand("10c,14s")
	a.Equal(21, p.Score())

	// callers get a copy
	h := p.Hand()
	h.Remove(card("10c"))
	a.Equal(2, len(p.hand))
}
