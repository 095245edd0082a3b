package rng

import "math/rand"

// Seeded is a Generator backed by a seeded math/rand source.
// It produces a repeatable sequence, which makes shuffles deterministic in tests.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a new seeded generator
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rng: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}
