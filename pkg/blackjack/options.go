package blackjack

import (
	"time"

	"saloon-blackjack-server/internal/rng"
)

// Options provides options for the game
type Options struct {
	// TickInterval is how often the run loop should call Tick
	TickInterval time.Duration

	// TimeBetweenHands is how long the table stays idle before the next hand
	TimeBetweenHands time.Duration

	// AmbientPeriod is how often the dealer emits an ambient message
	AmbientPeriod time.Duration

	// MaxSeats caps seated plus waiting players
	MaxSeats int

	// Rand is the source of randomness used to shuffle the deck
	Rand rng.Generator
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		TickInterval:     time.Second * 5,
		TimeBetweenHands: time.Second * 5,
		AmbientPeriod:    time.Second * 10,
		MaxSeats:         seatsLimit,
		Rand:             rng.Crypto{},
	}
}
