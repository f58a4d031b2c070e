// SPDX-License-Identifier: MIT

// Package noise: functional configuration for Engine construction.
// This file defines:
//   - documented defaults (constants),
//   - Option / settings (functional options with internal state),
//   - gatherOptions helper (internal).
//
// Validation is eager: New rejects malformed parameters with sentinel
// errors before any sampling can happen (see validators.go).

package noise

import "github.com/katalvlaran/nperlin/warp"

// DEFAULTS - single source of truth for absent-option behavior.
const (
	// DefaultFrequency is the per-axis lattice node count per period.
	DefaultFrequency = 8

	// DefaultWaveLength is the per-axis spatial length of one period.
	DefaultWaveLength = 128.0

	// DefaultRangeLo and DefaultRangeHi bound the default output range.
	DefaultRangeLo = 0.0
	DefaultRangeHi = 1.0

	// DefaultFWM is the joint frequency/waveLength multiplier.
	DefaultFWM = 1
)

// minParallelSamples is the batch size at which interpolation switches
// from the serial loop to parallel.For.
const minParallelSamples = 2048

// settings accumulates raw option values before validation.
// Fields are pointers/nil-able so New can distinguish "absent" from "zero".
type settings struct {
	seed       *int64
	frequency  []int
	waveLength []float64
	warp       []warp.Func
	rangeSet   bool
	rangeLo    float64
	rangeHi    float64
	fwm        int
	srcSet     bool
	src        GridProvider
}

// Option mutates construction settings. Options only record values;
// New performs all validation.
type Option func(*settings)

// WithSeed fixes the lattice seed. Absent, a random seed is chosen.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.seed = &seed }
}

// WithFrequency sets per-axis lattice node counts (each must be > 1).
// Fewer values than sampled dimensions broadcast by repeating the last.
func WithFrequency(frequency ...int) Option {
	return func(s *settings) { s.frequency = frequency }
}

// WithWaveLength sets per-axis period lengths (each must be finite and > 0).
// Fewer values than sampled dimensions broadcast by repeating the last.
func WithWaveLength(waveLength ...float64) Option {
	return func(s *settings) { s.waveLength = waveLength }
}

// WithWarp sets per-axis blend curves (each must be non-nil).
// Fewer values than sampled dimensions broadcast by repeating the last.
func WithWarp(fns ...warp.Func) Option {
	return func(s *settings) { s.warp = fns }
}

// WithRange sets the output range. Bounds must be finite; hi may equal or
// fall below lo, in which case output orientation inverts.
func WithRange(lo, hi float64) Option {
	return func(s *settings) { s.rangeSet, s.rangeLo, s.rangeHi = true, lo, hi }
}

// WithFWM sets the joint frequency/waveLength multiplier (must be >= 1).
// It scales node count and period together, leaving internodal spacing
// unchanged - the layered/multi-scale composition knob.
func WithFWM(fwm int) Option {
	return func(s *settings) { s.fwm = fwm }
}

// WithSource injects a custom GridProvider. Absent, a prng.Lattice keyed
// by the (possibly random) seed is used. When both WithSeed and WithSource
// are given, the seed is applied to the provided source.
func WithSource(src GridProvider) Option {
	return func(s *settings) { s.srcSet, s.src = true, src }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) settings {
	s := settings{
		frequency:  []int{DefaultFrequency},
		waveLength: []float64{DefaultWaveLength},
		warp:       []warp.Func{warp.Improved()},
		rangeLo:    DefaultRangeLo,
		rangeHi:    DefaultRangeHi,
		fwm:        DefaultFWM,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}
