package axis

import "errors"

// Sentinel errors for axis operations.
var (
	// ErrEmptyTuple indicates a tuple was constructed with no values.
	ErrEmptyTuple = errors.New("axis: tuple must declare at least one value")
	// ErrBadDims indicates a dimension count below 1.
	ErrBadDims = errors.New("axis: dimensions must be >= 1")
)
