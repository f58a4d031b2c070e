package prng

import "errors"

// Sentinel errors for lattice window requests.
var (
	// ErrBadShape indicates a window extent below 1 on some axis.
	ErrBadShape = errors.New("prng: window shape extents must be >= 1")
	// ErrShapeMismatch indicates shape and offset of differing lengths.
	ErrShapeMismatch = errors.New("prng: shape and offset must have the same length")
)
