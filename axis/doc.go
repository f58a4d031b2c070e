// Package axis provides the small per-axis building blocks shared by the
// noise pipeline: fixed-length parameter tuples with broadcast-last
// indexing, hypercube corner enumeration, and ragged-length helpers.
//
// What:
//
//   - Tuple[T]: an ordered, fixed-size sequence of per-axis values.
//     Indexing past the declared length repeats the last value, so a
//     single declared value broadcasts over any number of dimensions.
//   - Scale / Div: elementwise arithmetic over tuples, preserving the
//     broadcast rule.
//   - Corners(dims): the 2^dims binary offset vectors of a hypercube,
//     in the fixed bit order the interpolation collapse depends on.
//   - MaxLen: the maximum element count across ragged per-axis inputs.
//
// Why:
//
//   - Noise configuration is naturally per-axis (frequency, wave length,
//     warp), but callers rarely want to spell out every axis; the
//     broadcast-last rule lets one value cover all dimensions.
//   - Bounds resolution and interpolation must agree on one vertex order;
//     Corners is that single source of truth.
//
// Complexity:
//
//   - Tuple.At, Len: O(1).
//   - Scale, Div: O(len).
//   - Corners(d): O(d·2^d) time and memory — corner count doubles per
//     added dimension.
//
// Errors:
//
//   - ErrEmptyTuple: a tuple must declare at least one value.
//   - ErrBadDims: Corners requires dims ≥ 1.
package axis
