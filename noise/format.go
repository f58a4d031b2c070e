// SPDX-License-Identifier: MIT

package noise

import (
	"math"

	"github.com/katalvlaran/nperlin/axis"
)

// formatCoords aligns ragged per-axis coordinate inputs into a dense
// dims×N matrix, N being the longest axis. Shorter axes are upsampled
// piecewise-constant: with stretch = N div L and left = N mod L, each of
// the axis's values repeats stretch times over the first N-left slots and
// the last value alone fills the remaining left slots. No interpolation
// happens here - a short axis holds its values, it does not blend them.
//
// Every cell passes through math.Abs: negative coordinates mirror onto the
// non-negative range.
//
// Callers must have validated axes (non-empty, finite) beforehand.
// Complexity: O(dims·N).
func formatCoords(axes [][]float64) [][]float64 {
	n := axis.MaxLen(axes)
	out := make([][]float64, len(axes))
	for d, src := range axes {
		row := make([]float64, n)
		stretch := n / len(src)
		pos := 0
		for _, v := range src {
			for r := 0; r < stretch; r++ {
				row[pos] = math.Abs(v)
				pos++
			}
		}
		// left = n mod len(src) trailing slots repeat the final value.
		last := math.Abs(src[len(src)-1])
		for ; pos < n; pos++ {
			row[pos] = last
		}
		out[d] = row
	}

	// Internal invariant: the result must be an exact dims×N matrix.
	// Unreachable given the construction above; a failure here is a defect
	// in the formatter itself, not bad user input.
	for _, row := range out {
		if len(row) != n {
			panic("noise: formatted coordinates are not a dims×N matrix")
		}
	}

	return out
}
