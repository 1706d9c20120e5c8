package game

import "errors"

var (
	ErrEmptyDeck      = errors.New("deck is empty")
	ErrRoundNotActive = errors.New("round is not active")
	ErrInvalidRank    = errors.New("invalid rank")
	ErrInvalidSuit    = errors.New("invalid suit")
)
