package blackjack

import "errors"

// Gameplay failures are recoverable: the table reports them and lets
// the console re-prompt. ErrDealerSplit is the exception, it signals a
// broken invariant rather than a refused move.
var (
	ErrInsufficientCash = errors.New("insufficient cash")
	ErrNotSplittable    = errors.New("hand is not splittable")
	ErrTooManyHands     = errors.New("cannot hold more than four hands")
	ErrDealerSplit      = errors.New("the dealer never splits")
	ErrDealerBet        = errors.New("the dealer does not bet")
)
