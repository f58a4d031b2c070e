// SPDX-License-Identifier: MIT

// Package noise: core types shared across the pipeline files.
package noise

import (
	"github.com/katalvlaran/nperlin/axis"
	"github.com/katalvlaran/nperlin/warp"
)

// GridProvider is the deterministic source of lattice random values.
// Implementations must be content-addressed: the value at a given absolute
// multi-index is a pure function of (seed, index) and never depends on
// which window was requested around it. Package prng supplies the default.
type GridProvider interface {
	// Seed reports the current seed.
	Seed() int64
	// SetSeed rekeys the provider; all node values change deterministically.
	SetSeed(seed int64)
	// Window returns the dense row-major block (axis 0 slowest) of lattice
	// values with the given per-axis extents starting at offset.
	Window(shape, offset []int) ([]float64, error)
}

// Engine generates tileable N-dimensional value noise. It owns the
// configuration and orchestrates the sampling pipeline; see package doc.
// Construct with New; zero value is not usable.
//
// Derived quantities (MFrequency, MWaveLength, Amp) are recomputed on every
// access, never cached, so setters carry no invalidation logic.
type Engine struct {
	frequency  axis.Tuple[int]       // lattice nodes per period, per axis (> 1)
	waveLength axis.Tuple[float64]   // spatial length of one period, per axis (> 0)
	warp       axis.Tuple[warp.Func] // per-axis blend curve
	rangeLo    float64               // output range lower bound
	rangeHi    float64               // output range upper bound (may be <= rangeLo)
	fwm        int                   // joint frequency/waveLength multiplier (>= 1)
	src        GridProvider          // lattice random source
}

// cornerTensor holds the wrapped lattice corner indices of one sampling
// call in a flat row-major buffer: entry (d, v, s) is the axis-d index of
// hypercube vertex v for sample s, at flat offset (d·verts+v)·n+s.
// Flat storage with explicit stride math keeps the hot loops allocation-free.
type cornerTensor struct {
	dims  int   // coordinate axes
	verts int   // 2^dims hypercube vertices
	n     int   // samples per call
	idx   []int // flat buffer, len == dims*verts*n
}

func newCornerTensor(dims, n int) *cornerTensor {
	verts := 1 << dims

	return &cornerTensor{
		dims:  dims,
		verts: verts,
		n:     n,
		idx:   make([]int, dims*verts*n),
	}
}

func (t *cornerTensor) at(d, v, s int) int {
	return t.idx[(d*t.verts+v)*t.n+s]
}

func (t *cornerTensor) set(d, v, s, val int) {
	t.idx[(d*t.verts+v)*t.n+s] = val
}
