// Package prng provides the deterministic random lattice backing the noise
// pipeline: a seed-keyed, content-addressed source of values in [0,1)
// indexed by absolute integer multi-index.
//
// What:
//
//   - Lattice maps (seed, absolute multi-index) → float64 in [0,1) through
//     a keyed 64-bit hash (xxhash). No state beyond the seed exists; the
//     value at an index never depends on which window was requested
//     around it.
//   - Window(shape, offset) materializes a dense axis-aligned block of
//     lattice values in row-major order (axis 0 slowest).
//   - At(index...) probes a single node.
//
// Why:
//
//   - Content-addressing is what makes windowed fetching sound: the noise
//     core requests only the minimal bounding window per call, and two
//     overlapping windows must agree on every shared node.
//   - Hashing beats a stateful generator here because lattice nodes are
//     addressed randomly, not sequentially.
//
// Complexity:
//
//   - At: O(dims). Window: O(dims·∏shape) time, O(∏shape) memory.
//
// Errors:
//
//   - ErrBadShape: a window extent below 1.
//   - ErrShapeMismatch: shape and offset of differing lengths.
package prng
