// SPDX-License-Identifier: MIT

// Package noise: eager parameter validation shared by New and the setters.
// Every check here runs at configuration time so sampling never surfaces
// a lazy invalid-argument failure.

package noise

import (
	"math"

	"github.com/katalvlaran/nperlin/warp"
)

func validateFrequency(frequency []int) error {
	if len(frequency) == 0 {
		return ErrBadFrequency
	}
	for _, f := range frequency {
		if f <= 1 {
			return ErrBadFrequency
		}
	}

	return nil
}

func validateWaveLength(waveLength []float64) error {
	if len(waveLength) == 0 {
		return ErrBadWaveLength
	}
	for _, w := range waveLength {
		if !(w > 0) || math.IsInf(w, 0) {
			return ErrBadWaveLength
		}
	}

	return nil
}

func validateWarp(fns []warp.Func) error {
	if len(fns) == 0 {
		return ErrBadWarp
	}
	for _, fn := range fns {
		if fn == nil {
			return ErrBadWarp
		}
	}

	return nil
}

func validateRange(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return ErrBadRange
	}

	return nil
}

func validateFWM(fwm int) error {
	if fwm < 1 {
		return ErrBadFWM
	}

	return nil
}

// validateAxes guards the sampling entry point: every axis must carry at
// least one value and every coordinate must be finite. Negative values are
// legal (they mirror onto the non-negative range in the formatter).
func validateAxes(axes [][]float64) error {
	for _, a := range axes {
		if len(a) == 0 {
			return ErrEmptyAxis
		}
		for _, c := range a {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return ErrBadCoordinate
			}
		}
	}

	return nil
}
