package warp_test

import (
	"testing"

	"github.com/katalvlaran/nperlin/warp"
	"github.com/stretchr/testify/assert"
)

// namedCurves lists every constructor for table-driven endpoint checks.
func namedCurves() map[string]warp.Func {
	return map[string]warp.Func{
		"Improved":   warp.Improved(),
		"SmoothStep": warp.SmoothStep(),
		"Linear":     warp.Linear(),
		"Cosine":     warp.Cosine(),
		"Square":     warp.Square(),
		"Cubic":      warp.Cubic(),
	}
}

// TestEndpoints verifies f(0)=0 and f(1)=1 for every curve - the property
// that keeps lattice-node samples exact.
func TestEndpoints(t *testing.T) {
	for name, fn := range namedCurves() {
		assert.InDelta(t, 0.0, fn(0), 1e-15, "%s(0)", name)
		assert.InDelta(t, 1.0, fn(1), 1e-15, "%s(1)", name)
	}
}

// TestMidpoints pins the curve shapes at t=0.5.
func TestMidpoints(t *testing.T) {
	assert.Equal(t, 0.5, warp.Improved()(0.5), "smootherstep is symmetric")
	assert.Equal(t, 0.5, warp.SmoothStep()(0.5), "smoothstep is symmetric")
	assert.Equal(t, 0.5, warp.Linear()(0.5))
	assert.InDelta(t, 0.5, warp.Cosine()(0.5), 1e-15)
	assert.Equal(t, 0.25, warp.Square()(0.5))
	assert.Equal(t, 0.125, warp.Cubic()(0.5))
}

// TestRangeAndMonotonic samples each curve across [0,1] and checks outputs
// stay in [0,1] and never decrease.
func TestRangeAndMonotonic(t *testing.T) {
	const steps = 1000
	for name, fn := range namedCurves() {
		prev := fn(0)
		for i := 1; i <= steps; i++ {
			v := fn(float64(i) / steps)
			assert.GreaterOrEqual(t, v, 0.0, "%s below 0", name)
			assert.LessOrEqual(t, v, 1.0, "%s above 1", name)
			assert.GreaterOrEqual(t, v, prev, "%s not monotonic at step %d", name, i)
			prev = v
		}
	}
}

// TestImprovedDerivativeFlatness spot-checks the smootherstep signature:
// near-zero slope at both endpoints.
func TestImprovedDerivativeFlatness(t *testing.T) {
	fn := warp.Improved()
	const h = 1e-4
	assert.InDelta(t, 0.0, (fn(h)-fn(0))/h, 1e-3, "flat start")
	assert.InDelta(t, 0.0, (fn(1)-fn(1-h))/h, 1e-3, "flat end")
}
