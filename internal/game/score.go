package game

const (
	Blackjack = 21
	softening = 10
)

// CalculateScore sums the hand with every Ace at 11, then softens Aces to 1
// one at a time while the total is over 21.
func CalculateScore(hand []Card) int {
	score, _ := scoreWithSoftAces(hand)
	return score
}

func scoreWithSoftAces(hand []Card) (score, softAces int) {
	for _, card := range hand {
		score += card.Rank.Value()
		if card.Rank == Ace {
			softAces++
		}
	}

	for score > Blackjack && softAces > 0 {
		score -= softening
		softAces--
	}

	return score, softAces
}

// IsSoft reports whether at least one Ace in the hand still counts as 11.
func IsSoft(hand []Card) bool {
	_, soft := scoreWithSoftAces(hand)
	return soft > 0
}

// IsBlackjack reports a two-card 21: an Ace with a ten-valued card.
func IsBlackjack(cards []Card) bool {
	return len(cards) == 2 && CalculateScore(cards) == Blackjack
}

func IsBust(cards []Card) bool {
	return CalculateScore(cards) > Blackjack
}
