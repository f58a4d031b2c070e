package warp

import "math"

// Func maps a fractional offset in [0,1] to a blend weight in [0,1].
// Implementations must satisfy f(0)=0 and f(1)=1 for lattice-node
// exactness; everything in this package does.
type Func func(t float64) float64

// Improved returns the smootherstep curve 6t⁵−15t⁴+10t³ used by classic
// improved noise. Zero first and second derivatives at both endpoints.
func Improved() Func {
	return func(t float64) float64 {
		return t * t * t * (t*(t*6-15) + 10)
	}
}

// SmoothStep returns the Hermite curve 3t²−2t³. Zero first derivative at
// both endpoints; cheaper than Improved but only C¹.
func SmoothStep() Func {
	return func(t float64) float64 {
		return t * t * (3 - 2*t)
	}
}

// Linear returns the identity curve: plain linear interpolation.
func Linear() Func {
	return func(t float64) float64 {
		return t
	}
}

// Cosine returns the half-cosine ease (1−cos πt)/2.
func Cosine() Func {
	return func(t float64) float64 {
		return (1 - math.Cos(t*math.Pi)) / 2
	}
}

// Square returns t², skewing the blend toward the lower lattice node.
func Square() Func {
	return func(t float64) float64 {
		return t * t
	}
}

// Cubic returns t³, a stronger skew toward the lower lattice node.
func Cubic() Func {
	return func(t float64) float64 {
		return t * t * t
	}
}
