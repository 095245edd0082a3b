package blackjack

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestScore(t *testing.T) {
	a := assert.New(t)

	a.Equal(0, Score(hand("")))
	a.Equal(5, Score(hand("2c,3d")))

	// ten and face cards are all worth ten
	a.Equal(10, Score(hand("10c")))
	a.Equal(10, Score(hand("11c")))
	a.Equal(10, Score(hand("12c")))
	a.Equal(10, Score(hand("13c")))
	a.Equal(40, Score(hand("10c,11d,12h,13s")))

	// soft ace
	a.Equal(21, Score(hand("10c,14s")))
	a.Equal(11, Score(hand("14s")))

	// hard ace
	a.Equal(21, Score(hand("14c,14s,9d")))
	a.Equal(14, Score(hand("14c,14d,14h,14s")))
	a.Equal(12, Score(hand("14s,14d")))
}

func TestScore_fiveAces(t *testing.T) {
	// a mega-hand from a shoe: four aces plus one more
	assert.Equal(t, 15, Score(hand("14c,14d,14h,14s,14c")))
}

func TestScore_acesEvaluatedLast(t *testing.T) {
	a := assert.New(t)

	// the ace was dealt first, but it's still valued after the other cards
	a.Equal(20, Score(hand("14s,10c,9c")))
	a.Equal(Score(hand("10c,9c,14s")), Score(hand("14s,10c,9c")))

	// dealt order never changes the score
	a.Equal(Score(hand("14s,5c,14d")), Score(hand("5c,14d,14s")))
	a.Equal(17, Score(hand("14s,5c,14d")))
}
