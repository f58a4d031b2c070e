// SPDX-License-Identifier: MIT

// Package noise: sentinel error set. All public operations return these
// sentinels (optionally wrapped with context via %w); tests match them
// with errors.Is. Panics are reserved for internal-invariant violations
// in private helpers.

package noise

import "errors"

var (
	// ErrBadFrequency indicates a frequency entry that is not an integer > 1.
	ErrBadFrequency = errors.New("noise: frequency entries must be integers > 1")

	// ErrBadWaveLength indicates a wave length entry that is not finite and > 0.
	ErrBadWaveLength = errors.New("noise: wave length entries must be finite and > 0")

	// ErrBadWarp indicates a nil warp function entry.
	ErrBadWarp = errors.New("noise: warp entries must be non-nil")

	// ErrBadRange indicates a non-finite range bound. The bounds themselves
	// are unordered: hi < lo is legal and inverts output orientation.
	ErrBadRange = errors.New("noise: range bounds must be finite")

	// ErrBadFWM indicates a frequency-wavelength multiplier below 1.
	ErrBadFWM = errors.New("noise: fwm must be an integer >= 1")

	// ErrNilSource indicates a nil GridProvider.
	ErrNilSource = errors.New("noise: grid source must be non-nil")

	// ErrEmptyAxis indicates a coordinate axis with no values.
	ErrEmptyAxis = errors.New("noise: every coordinate axis must contain at least one value")

	// ErrBadCoordinate indicates a NaN or infinite coordinate input.
	ErrBadCoordinate = errors.New("noise: coordinates must be finite")
)
