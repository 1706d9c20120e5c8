package game

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlayerTurn
)

func (p Phase) String() string {
	if p == PhasePlayerTurn {
		return "player turn"
	}
	return "not started"
}

type Rules struct {
	// DealerStandsOn is the total at which the dealer stops drawing, soft totals included.
	DealerStandsOn int
	// ReshuffleBelow rebuilds the deck before a deal when fewer cards remain,
	// or when too few remain to deal at all. Zero never replenishes the deck.
	ReshuffleBelow int
}

// dealSize is the number of cards a deal takes from the deck.
const dealSize = 4

func DefaultRules() Rules {
	return Rules{
		DealerStandsOn: 17,
		ReshuffleBelow: 15,
	}
}

// Engine plays one seat against the dealer. It is not safe for concurrent
// use; Manager serialises access when sessions are shared between goroutines.
type Engine struct {
	deck   *Deck
	rules  Rules
	player []Card
	dealer []Card
	round  string
	log    logrus.FieldLogger
}

func NewEngine(deck *Deck, rules Rules, log logrus.FieldLogger) *Engine {
	if deck == nil {
		deck = NewDeck(nil)
	}
	if rules.DealerStandsOn <= 0 {
		rules.DealerStandsOn = DefaultRules().DealerStandsOn
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Engine{
		deck:   deck,
		rules:  rules,
		player: make([]Card, 0, 10),
		dealer: make([]Card, 0, 10),
		log:    log,
	}
}

// HandValue is the blackjack value of any hand.
func (e *Engine) HandValue(hand []Card) int {
	return CalculateScore(hand)
}

func (e *Engine) Phase() Phase {
	if len(e.player) == 0 {
		return PhaseNotStarted
	}
	return PhasePlayerTurn
}

// CanAct reports whether hit and stand are offered: the round is dealt and
// the player is below 21.
func (e *Engine) CanAct() bool {
	return len(e.player) > 0 && CalculateScore(e.player) < Blackjack
}

func (e *Engine) PlayerHand() []Card {
	return append([]Card(nil), e.player...)
}

func (e *Engine) DealerHand() []Card {
	return append([]Card(nil), e.dealer...)
}

func (e *Engine) PlayerScore() int {
	return CalculateScore(e.player)
}

func (e *Engine) Round() string {
	return e.round
}

func (e *Engine) Remaining() int {
	return e.deck.Remaining()
}

func (e *Engine) clear() {
	e.player = e.player[:0]
	e.dealer = e.dealer[:0]
}

// Deal clears both hands and deals player, dealer, player, dealer from the
// top of the deck.
func (e *Engine) Deal() error {
	e.clear()
	e.round = ""

	if e.rules.ReshuffleBelow > 0 && e.deck.Remaining() < max(e.rules.ReshuffleBelow, dealSize) {
		e.log.WithField("remaining", e.deck.Remaining()).Info("Dealer shuffles the deck")
		e.deck.Reset()
	}

	if e.deck.Remaining() < dealSize {
		return fmt.Errorf("deal: %w", ErrEmptyDeck)
	}

	for i := 0; i < 2; i++ {
		card, err := e.deck.Draw()
		if err != nil {
			return fmt.Errorf("deal: %w", err)
		}
		e.player = append(e.player, card)

		card, err = e.deck.Draw()
		if err != nil {
			return fmt.Errorf("deal: %w", err)
		}
		e.dealer = append(e.dealer, card)
	}

	e.round = uuid.NewString()
	e.log.WithFields(logrus.Fields{
		"round":     e.round,
		"player":    ShortHand(e.player),
		"up":        e.dealer[0].Short(),
		"remaining": e.deck.Remaining(),
	}).Debug("Round dealt")

	return nil
}

// Hit draws one card for the player. A bust loses the round at once: the
// result carries the final hands and both hands are cleared.
func (e *Engine) Hit() (HitResult, error) {
	if len(e.player) == 0 {
		return HitResult{}, fmt.Errorf("hit: %w", ErrRoundNotActive)
	}

	card, err := e.deck.Draw()
	if err != nil {
		return HitResult{}, fmt.Errorf("hit: %w", err)
	}
	e.player = append(e.player, card)

	res := HitResult{
		Card:  card,
		Value: CalculateScore(e.player),
	}
	res.Busted = res.Value > Blackjack

	if res.Busted {
		r := e.resolve(Lose, PlayerBust)
		res.Resolution = &r
	}

	return res, nil
}

// Stand plays out the dealer and settles the round. If the deck runs dry
// while the dealer draws, ErrEmptyDeck is returned and the round stays open.
func (e *Engine) Stand() (Resolution, error) {
	if len(e.player) == 0 {
		return Resolution{}, fmt.Errorf("stand: %w", ErrRoundNotActive)
	}

	for CalculateScore(e.dealer) < e.rules.DealerStandsOn {
		card, err := e.deck.Draw()
		if err != nil {
			return Resolution{}, fmt.Errorf("stand: %w", err)
		}
		e.dealer = append(e.dealer, card)
	}

	outcome, reason := Decide(CalculateScore(e.player), CalculateScore(e.dealer))
	return e.resolve(outcome, reason), nil
}

func (e *Engine) resolve(outcome Outcome, reason Reason) Resolution {
	r := Resolution{
		Round:       e.round,
		Outcome:     outcome,
		Reason:      reason,
		PlayerValue: CalculateScore(e.player),
		DealerValue: CalculateScore(e.dealer),
		PlayerHand:  e.PlayerHand(),
		DealerHand:  e.DealerHand(),
	}

	e.log.WithFields(logrus.Fields{
		"round":   r.Round,
		"outcome": r.Outcome,
		"reason":  r.Reason,
		"player":  ShortHand(r.PlayerHand),
		"dealer":  ShortHand(r.DealerHand),
	}).Info("Round resolved")

	e.clear()
	e.round = ""
	return r
}
