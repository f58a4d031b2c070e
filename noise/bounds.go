// SPDX-License-Identifier: MIT

package noise

import (
	"math"

	"github.com/katalvlaran/nperlin/axis"
)

// findBounds resolves formatted coordinates against the lattice: for each
// axis d and sample s it unitizes the coordinate (divide by internodal
// spacing), splits it into a lower node index and a fractional offset in
// [0,1), and enumerates the 2^dims hypercube corner indices around it.
//
// Corner order is the axis.Corners contract: bit d of vertex index v is the
// offset added along axis d. The interpolation collapse pairs values in
// exactly this order.
//
// Every corner index wraps modulo MFrequency[d] here, before the bounding
// window is computed. Wrapping first is what keeps window memory bounded by
// the lattice period however far the input coordinates range.
//
// Complexity: O(dims·2^dims·N) - the dominant cost for high dimensions.
func (e *Engine) findBounds(fc [][]float64, amp []float64) (*cornerTensor, [][]float64) {
	dims, n := len(fc), len(fc[0])
	corners, err := axis.Corners(dims)
	if err != nil {
		// Unreachable: Noise always supplies at least one axis.
		panic("noise: bounds resolution with zero dimensions")
	}

	t := newCornerTensor(dims, n)
	frac := make([][]float64, dims)
	mFreq := e.MFrequency()
	for d := 0; d < dims; d++ {
		period := mFreq.At(d)
		fr := make([]float64, n)
		for s := 0; s < n; s++ {
			u := fc[d][s] / amp[d]
			lower := int(math.Floor(u))
			fr[s] = u - float64(lower)
			// Coordinates are mirrored non-negative, so lower >= 0 and
			// plain modulo wraps into [0, period).
			lo := lower % period
			hi := (lower + 1) % period
			for v := 0; v < t.verts; v++ {
				if corners[v][d] == 0 {
					t.set(d, v, s, lo)
				} else {
					t.set(d, v, s, hi)
				}
			}
		}
		frac[d] = fr
	}

	return t, frac
}
