package game

import "fmt"

type Outcome int

const (
	OutcomeNone Outcome = iota
	Win
	Lose
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Tie:
		return "tie"
	case OutcomeNone:
		return "none"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type Reason int

const (
	ReasonNone Reason = iota
	DealerBust
	HigherValue
	LowerValue
	Push
	PlayerBust
)

func (r Reason) String() string {
	switch r {
	case DealerBust:
		return "dealer bust"
	case HigherValue:
		return "higher value"
	case LowerValue:
		return "lower value"
	case Push:
		return "push"
	case PlayerBust:
		return "player bust"
	case ReasonNone:
		return "none"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Decide compares final hand values once the dealer has finished drawing.
// The player is assumed not to have busted.
func Decide(playerValue, dealerValue int) (Outcome, Reason) {
	switch {
	case dealerValue > Blackjack:
		return Win, DealerBust
	case playerValue > dealerValue:
		return Win, HigherValue
	case playerValue < dealerValue:
		return Lose, LowerValue
	default:
		return Tie, Push
	}
}

// Resolution is the final state of a round, captured before the hands are cleared.
type Resolution struct {
	Round       string
	Outcome     Outcome
	Reason      Reason
	PlayerValue int
	DealerValue int
	PlayerHand  []Card
	DealerHand  []Card
}

type HitResult struct {
	Card   Card
	Value  int
	Busted bool
	// Resolution is set only when the hit busted the player.
	Resolution *Resolution
}
