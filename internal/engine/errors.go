package engine

import "errors"

var (
	ErrWrongTurn             = errors.New("not your turn")
	ErrWrongPhase            = errors.New("action not allowed in this phase")
	ErrCardNotInHand         = errors.New("card not in hand")
	ErrIllegalPlay           = errors.New("illegal card play")
	ErrInvalidBid            = errors.New("invalid bid")
	ErrMissingTrumpSelection = errors.New("trump card selection required")
	ErrInvalidTrumpSelection = errors.New("invalid trump selection")
	ErrRevealNotAllowed      = errors.New("trump reveal not allowed")
	ErrPlayerCount           = errors.New("player count does not match mode")

	// ErrInconsistentTrumpState marks a broken invariant. It is never
	// returned to callers; ApplyAction panics with it.
	ErrInconsistentTrumpState = errors.New("inconsistent game state")
)
