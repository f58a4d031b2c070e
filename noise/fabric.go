// SPDX-License-Identifier: MIT

package noise

// window is the minimal axis-aligned block of lattice values covering one
// sampling call, with row-major strides (axis 0 slowest) for direct corner
// lookup: flat offset = Σ_d (index[d]-offset[d])·stride[d].
type window struct {
	data   []float64
	offset []int
	stride []int
}

// findFabric computes the per-axis min/max over the (already wrapped)
// corner tensor and fetches exactly that covering window from the grid
// source. Nothing outside the window is ever materialized; because corner
// indices are wrapped, the window never exceeds the lattice period on any
// axis.
// Complexity: O(dims·2^dims·N) for the scan plus the provider window cost.
func (e *Engine) findFabric(t *cornerTensor) (*window, error) {
	shape := make([]int, t.dims)
	offset := make([]int, t.dims)
	for d := 0; d < t.dims; d++ {
		mn, mx := t.at(d, 0, 0), t.at(d, 0, 0)
		for v := 0; v < t.verts; v++ {
			for s := 0; s < t.n; s++ {
				idx := t.at(d, v, s)
				if idx < mn {
					mn = idx
				}
				if idx > mx {
					mx = idx
				}
			}
		}
		offset[d] = mn
		shape[d] = mx - mn + 1
	}

	data, err := e.src.Window(shape, offset)
	if err != nil {
		return nil, err
	}

	stride := make([]int, t.dims)
	stride[t.dims-1] = 1
	for d := t.dims - 2; d >= 0; d-- {
		stride[d] = stride[d+1] * shape[d+1]
	}

	return &window{data: data, offset: offset, stride: stride}, nil
}

// cornerValue looks up the lattice value at vertex v of sample s.
func (w *window) cornerValue(t *cornerTensor, v, s int) float64 {
	flat := 0
	for d, st := range w.stride {
		flat += (t.at(d, v, s) - w.offset[d]) * st
	}

	return w.data[flat]
}
