// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"

	"github.com/katalvlaran/nperlin/axis"
	"github.com/katalvlaran/nperlin/prng"
	"github.com/katalvlaran/nperlin/warp"
)

// New constructs an Engine from functional options over the documented
// defaults: random seed, frequency 8, waveLength 128, Improved warp,
// range (0,1), fwm 1, prng.Lattice source.
// All parameters validate eagerly; sampling never raises a configuration
// error. Returns the matching sentinel on the first malformed option.
// Complexity: O(total option values).
func New(opts ...Option) (*Engine, error) {
	s := gatherOptions(opts)

	if err := validateFrequency(s.frequency); err != nil {
		return nil, err
	}
	if err := validateWaveLength(s.waveLength); err != nil {
		return nil, err
	}
	if err := validateWarp(s.warp); err != nil {
		return nil, err
	}
	if s.rangeSet {
		if err := validateRange(s.rangeLo, s.rangeHi); err != nil {
			return nil, err
		}
	}
	if err := validateFWM(s.fwm); err != nil {
		return nil, err
	}
	if s.srcSet && s.src == nil {
		return nil, ErrNilSource
	}

	src := s.src
	switch {
	case src == nil && s.seed == nil:
		src = prng.NewRandom()
	case src == nil:
		src = prng.New(*s.seed)
	case s.seed != nil:
		src.SetSeed(*s.seed)
	}

	frequency, _ := axis.NewTuple(s.frequency...)
	waveLength, _ := axis.NewTuple(s.waveLength...)
	warpFns, _ := axis.NewTuple(s.warp...)

	return &Engine{
		frequency:  frequency,
		waveLength: waveLength,
		warp:       warpFns,
		rangeLo:    s.rangeLo,
		rangeHi:    s.rangeHi,
		fwm:        s.fwm,
		src:        src,
	}, nil
}

// Seed reports the lattice seed.
func (e *Engine) Seed() int64 { return e.src.Seed() }

// SetSeed rekeys the lattice source; all noise values change
// deterministically with it.
func (e *Engine) SetSeed(seed int64) { e.src.SetSeed(seed) }

// Frequency returns the configured per-axis lattice node counts.
func (e *Engine) Frequency() axis.Tuple[int] { return e.frequency }

// MFrequency returns the effective per-axis node counts, frequency·fwm.
// Derived on every call, never cached.
func (e *Engine) MFrequency() axis.Tuple[int] { return axis.Scale(e.frequency, e.fwm) }

// SetFrequency replaces the per-axis node counts (each must be > 1).
func (e *Engine) SetFrequency(frequency ...int) error {
	if err := validateFrequency(frequency); err != nil {
		return err
	}
	e.frequency, _ = axis.NewTuple(frequency...)

	return nil
}

// WaveLength returns the configured per-axis period lengths.
func (e *Engine) WaveLength() axis.Tuple[float64] { return e.waveLength }

// MWaveLength returns the effective per-axis period lengths,
// waveLength·fwm. Derived on every call, never cached.
func (e *Engine) MWaveLength() axis.Tuple[float64] {
	return axis.Scale(e.waveLength, float64(e.fwm))
}

// SetWaveLength replaces the per-axis period lengths (each finite, > 0).
func (e *Engine) SetWaveLength(waveLength ...float64) error {
	if err := validateWaveLength(waveLength); err != nil {
		return err
	}
	e.waveLength, _ = axis.NewTuple(waveLength...)

	return nil
}

// Warp returns the configured per-axis blend curves.
func (e *Engine) Warp() axis.Tuple[warp.Func] { return e.warp }

// SetWarp replaces the per-axis blend curves (each non-nil).
func (e *Engine) SetWarp(fns ...warp.Func) error {
	if err := validateWarp(fns); err != nil {
		return err
	}
	e.warp, _ = axis.NewTuple(fns...)

	return nil
}

// Range returns the output range bounds. hi may be <= lo.
func (e *Engine) Range() (lo, hi float64) { return e.rangeLo, e.rangeHi }

// SetRange replaces the output range (bounds finite; order free).
func (e *Engine) SetRange(lo, hi float64) error {
	if err := validateRange(lo, hi); err != nil {
		return err
	}
	e.rangeLo, e.rangeHi = lo, hi

	return nil
}

// FWM reports the joint frequency/waveLength multiplier.
func (e *Engine) FWM() int { return e.fwm }

// Amp returns the per-axis internodal spacing - effective wave length
// divided by effective node count - over the declared parameter axes.
// Because fwm scales both numerator and denominator, Amp is independent
// of it. Derived on every call, never cached.
func (e *Engine) Amp() []float64 {
	n := e.frequency.Len()
	if e.waveLength.Len() > n {
		n = e.waveLength.Len()
	}

	return e.ampFor(n)
}

// ampFor computes internodal spacing for the first dims axes, applying the
// broadcast-last rule of both parameter tuples.
func (e *Engine) ampFor(dims int) []float64 {
	return axis.Div(e.MWaveLength(), e.MFrequency(), dims)
}

// Noise samples the lattice: one []float64 per coordinate axis, ragged
// lengths welcome (see formatCoords for the alignment rule). Without
// arguments it samples the single coordinate 0 on one axis. The result
// holds one range-mapped value per aligned sample column.
//
// Pipeline: format → bounds → fabric window → interpolate → range map.
// Complexity: O(N·2^dims·dims) plus the provider window cost.
func (e *Engine) Noise(axes ...[]float64) ([]float64, error) {
	if len(axes) == 0 {
		axes = [][]float64{{0}}
	}
	if err := validateAxes(axes); err != nil {
		return nil, err
	}

	fc := formatCoords(axes)
	tensor, frac := e.findBounds(fc, e.ampFor(len(fc)))
	win, err := e.findFabric(tensor)
	if err != nil {
		return nil, fmt.Errorf("noise: fabric window: %w", err)
	}
	raw := e.interpolate(tensor, win, frac)
	e.applyRange(raw)

	return raw, nil
}

// At samples a single point with one scalar per axis.
func (e *Engine) At(coords ...float64) (float64, error) {
	axes := make([][]float64, len(coords))
	for d, c := range coords {
		axes[d] = []float64{c}
	}
	out, err := e.Noise(axes...)
	if err != nil {
		return 0, err
	}

	return out[0], nil
}

// Fabric fetches a raw window of lattice random values directly from the
// grid source, independent of the sampling pipeline. Useful for
// inspection and testing of the underlying lattice.
func (e *Engine) Fabric(shape, offset []int) ([]float64, error) {
	return e.src.Window(shape, offset)
}

// applyRange affine-remaps raw [0,1] noise into the configured range,
// in place: out = lo + raw·(hi-lo). A negative multiplier (hi < lo)
// simply inverts orientation.
func (e *Engine) applyRange(raw []float64) {
	mul := e.rangeHi - e.rangeLo
	for i := range raw {
		raw[i] = raw[i]*mul + e.rangeLo
	}
}

// String renders the live configuration, mirroring the engine's knobs:
// seed, frequency, wave length, range, and fwm.
func (e *Engine) String() string {
	return fmt.Sprintf("<seed:%d freq:%v wLen:%v range:(%g,%g) fwm:%d>",
		e.Seed(), e.frequency.Values(), e.waveLength.Values(), e.rangeLo, e.rangeHi, e.fwm)
}
