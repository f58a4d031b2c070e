// Package warp provides blend-weight curves for lattice interpolation.
//
// A warp function maps a fractional offset t ∈ [0,1] (position inside a
// lattice cell along one axis) to a blend weight in [0,1]. The curve
// decides how abruptly a sample transitions between the random values of
// neighboring lattice nodes: Linear gives straight blends with visible
// lattice creases, Improved (the classic smootherstep 6t⁵−15t⁴+10t³) gives
// C²-continuous noise, and the asymmetric curves (Square, Cubic) skew the
// blend toward the lower node.
//
// Every curve here satisfies f(0)=0 and f(1)=1, which keeps samples taken
// exactly on lattice nodes equal to the node values themselves.
//
// Each axis of a noise engine may carry a distinct curve, so one dimension
// can blend smoothly while another steps or skews independently.
package warp
