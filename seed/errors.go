package seed

import "errors"

// Sentinel errors for seed-generator range validation. Callers should
// branch with errors.Is, never string comparison.
var (
	// ErrOutOfRange indicates a numeric argument fell outside the
	// generator's documented valid interval.
	ErrOutOfRange = errors.New("seed: argument out of range")

	// ErrInvalidDims indicates Grid was called with no dimensions, a
	// non-positive dimension, or a dimension product outside [1,10000].
	ErrInvalidDims = errors.New("seed: invalid grid dimensions")
)
