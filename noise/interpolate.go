// SPDX-License-Identifier: MIT

package noise

import (
	"github.com/dgravesa/go-parallel/parallel"

	"github.com/katalvlaran/nperlin/warp"
)

// interpolate collapses each sample's 2^dims corner values to one raw
// noise value in [0,1] by successive per-axis warped linear blends.
//
// At step d the axis-d warp turns the fractional offset into a blend
// weight w; adjacent buffer pairs (which differ only in axis d's corner
// bit, by the axis.Corners order) combine as v0 + w·(v1-v0), halving the
// buffer. After dims steps one value remains. A warp with f(0)=0 and a
// zero offset collapses exactly to the lower corner's value, so samples
// on lattice nodes reproduce node values bit-for-bit.
//
// Batches of minParallelSamples or more run through parallel.For; each
// sample writes only its own output slot, so the parallel path is
// bit-identical to the serial one.
// Complexity: O(N·2^dims) time, O(2^dims) scratch per worker.
func (e *Engine) interpolate(t *cornerTensor, w *window, frac [][]float64) []float64 {
	warps := make([]warp.Func, t.dims)
	for d := range warps {
		warps[d] = e.warp.At(d)
	}

	one := func(s int, buf []float64) float64 {
		for v := 0; v < t.verts; v++ {
			buf[v] = w.cornerValue(t, v, s)
		}
		width := t.verts
		for d := 0; d < t.dims; d++ {
			blend := warps[d](frac[d][s])
			width /= 2
			for i := 0; i < width; i++ {
				lo, hi := buf[2*i], buf[2*i+1]
				buf[i] = lo + blend*(hi-lo)
			}
		}

		return buf[0]
	}

	out := make([]float64, t.n)
	if t.n >= minParallelSamples {
		parallel.For(t.n, func(s, _ int) {
			buf := make([]float64, t.verts)
			out[s] = one(s, buf)
		})

		return out
	}

	buf := make([]float64, t.verts)
	for s := 0; s < t.n; s++ {
		out[s] = one(s, buf)
	}

	return out
}
