package axis

// Corners enumerates the 2^dims binary offset vectors of a unit hypercube
// in the fixed bit order the sampling pipeline depends on:
// Corners(dims)[v][d] == (v>>d)&1, i.e. bit d of the vertex index is the
// 0/1 offset along axis d. Bounds resolution emits corner values in this
// order and the interpolation collapse pairs them in this order; the two
// must never disagree.
// Returns ErrBadDims when dims < 1.
// Complexity: O(dims·2^dims) time and memory.
func Corners(dims int) ([][]int, error) {
	if dims < 1 {
		return nil, ErrBadDims
	}
	verts := 1 << dims
	out := make([][]int, verts)
	for v := 0; v < verts; v++ {
		offs := make([]int, dims)
		for d := 0; d < dims; d++ {
			offs[d] = (v >> d) & 1
		}
		out[v] = offs
	}

	return out, nil
}

// MaxLen reports the maximum element count across ragged per-axis inputs.
// An empty outer slice yields 0.
// Complexity: O(len(axes)).
func MaxLen[T any](axes [][]T) int {
	maxLen := 0
	for _, a := range axes {
		if len(a) > maxLen {
			maxLen = len(a)
		}
	}

	return maxLen
}
