package search

import "errors"

var (
	// ErrUnreachable is returned when no action sequence connects the
	// initial state to a goal state.
	ErrUnreachable = errors.New("search: goal unreachable")

	// ErrDepthExceeded is returned when a path from the initial state grows
	// longer than the configured maximum depth.
	ErrDepthExceeded = errors.New("search: maximum depth exceeded")

	// ErrInvalidProblem is returned by New when Apply, IsGoal, Key or the
	// table is missing.
	ErrInvalidProblem = errors.New("search: invalid problem")

	// ErrTooFewDigits is returned when more digits are requested than the
	// sequence holds.
	ErrTooFewDigits = errors.New("search: not enough digits")

	// ErrTooManyDigits is returned when the requested number would overflow
	// a uint64.
	ErrTooManyDigits = errors.New("search: too many digits")

	// ErrNotDigit is returned when a value outside 0..9 is passed as a digit.
	ErrNotDigit = errors.New("search: value is not a decimal digit")
)
