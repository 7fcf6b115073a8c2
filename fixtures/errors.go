package fixtures

import "errors"

// Sentinel errors for malformed topology/trace generator parameters.
var (
	ErrTooFewNodes        = errors.New("fixtures: too few nodes")
	ErrInvalidProbability = errors.New("fixtures: probability must be in [0, 1]")
	ErrInvalidWorkingSet  = errors.New("fixtures: working set size cannot exceed total addresses")
	ErrInvalidAccessCount = errors.New("fixtures: n must be positive")
)
