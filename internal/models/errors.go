package models

import "errors"

// Error taxonomy for the advisory engine. Every failure a module can raise
// wraps exactly one of these sentinels; nothing is silently clamped or
// defaulted, and nothing is retried (all operations are deterministic).
var (
	// ErrInvalidInput covers out-of-range or malformed numeric parameters:
	// negative principal, non-positive term, and the like.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRule is raised when a budget rule's percentages do not sum
	// to 100 within the rounding tolerance.
	ErrInvalidRule = errors.New("invalid budget rule")

	// ErrInvalidHoldings is raised when portfolio holdings cannot be
	// normalized, i.e. their percentages sum to zero.
	ErrInvalidHoldings = errors.New("invalid holdings")

	// ErrUnknownCategory is raised when an expense entry carries a category
	// outside the fixed taxonomy.
	ErrUnknownCategory = errors.New("unknown expense category")

	// ErrUnsupportedTopic is raised by the facade for topics outside the
	// closed enumeration.
	ErrUnsupportedTopic = errors.New("unsupported topic")
)
