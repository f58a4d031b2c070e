package axis_test

import (
	"testing"

	"github.com/katalvlaran/nperlin/axis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCorners_BadDims verifies the dims >= 1 guard.
func TestCorners_BadDims(t *testing.T) {
	_, err := axis.Corners(0)
	assert.ErrorIs(t, err, axis.ErrBadDims)
	_, err = axis.Corners(-3)
	assert.ErrorIs(t, err, axis.ErrBadDims)
}

// TestCorners_BitOrder pins the vertex-order contract the interpolation
// collapse relies on: Corners(dims)[v][d] == (v>>d)&1.
func TestCorners_BitOrder(t *testing.T) {
	for dims := 1; dims <= 5; dims++ {
		cs, err := axis.Corners(dims)
		require.NoError(t, err)
		require.Len(t, cs, 1<<dims, "corner count must be 2^dims")

		for v, offs := range cs {
			require.Len(t, offs, dims)
			for d := 0; d < dims; d++ {
				assert.Equal(t, (v>>d)&1, offs[d],
					"dims=%d vertex=%d axis=%d", dims, v, d)
			}
		}
	}
}

// TestCorners_TwoDims spells the 2D order out explicitly.
func TestCorners_TwoDims(t *testing.T) {
	cs, err := axis.Corners(2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, cs)
}

// TestMaxLen covers ragged, uniform, and empty inputs.
func TestMaxLen(t *testing.T) {
	assert.Equal(t, 3, axis.MaxLen([][]float64{{1, 2, 3}, {5}}))
	assert.Equal(t, 2, axis.MaxLen([][]int{{1, 2}, {3, 4}}))
	assert.Equal(t, 0, axis.MaxLen([][]float64{}))
	assert.Equal(t, 0, axis.MaxLen([][]float64{{}}))
}
