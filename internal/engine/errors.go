package engine

import "errors"

var (
	// ErrInvalidWindowSize is returned when the window cannot hold a pair or
	// does not leave at least one element to check.
	ErrInvalidWindowSize = errors.New("invalid window size")

	// ErrNoMatchingRange is returned when no contiguous run of two or more
	// elements sums to the target.
	ErrNoMatchingRange = errors.New("no matching range")
)
