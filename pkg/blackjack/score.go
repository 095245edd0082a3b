package blackjack

import "saloon-blackjack-server/pkg/deck"

// target is the score a hand is trying to reach without going over
const target = 21

// dealerStandScore is the score at which the dealer stops drawing
const dealerStandScore = 17

// Score returns the blackjack value of a hand.
// Cards are counted in rank-ascending order so every ace is valued after all
// other cards: an ace counts 11 unless that would bust the hand, otherwise 1.
func Score(hand deck.Hand) int {
	score := 0
	for _, card := range hand.SortedByRank() {
		switch {
		case card.Rank < 10:
			score += card.Rank
		case card.Rank <= deck.King:
			score += 10
		default: // ace
			if score+11 > target {
				score++
			} else {
				score += 11
			}
		}
	}

	return score
}
