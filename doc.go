// Package nperlin is deterministic, tileable, N-dimensional value noise —
// reproducible spatial variation for terrain heightmaps, texture synthesis,
// and animation offsets.
//
// 🚀 What is nperlin?
//
//	A small, pure-compute library built around one sampling pipeline:
//		• Per-axis parameters: frequency, wave length, warp curve, output range
//		• Arbitrary dimensions — 1D signals to high-D lattices, one API
//		• Seamless tiling — the lattice is periodic per axis, no stitching
//		• Content-addressed randomness — same seed, same index, same value,
//		  whatever window was fetched around it
//
// ✨ Why choose nperlin?
//
//   - Deterministic – sampling is a pure function of (configuration, seed, coords)
//   - Bounded – only the minimal lattice window of a call is ever materialized
//   - Parallel – large batches interpolate concurrently, bit-identical to serial
//   - Extensible – inject your own grid source or blend curves per axis
//
// Everything is organized under four subpackages:
//
//	noise/ — Engine facade and the sampling pipeline (format → bounds → fabric → interpolate → range)
//	axis/  — per-axis parameter tuples with broadcast-last, hypercube corner enumeration
//	warp/  — blend-weight curves (Improved smootherstep, SmoothStep, Linear, Cosine, Square, Cubic)
//	prng/  — seed-keyed, content-addressed lattice random source
//
// Quick example:
//
//	eng, err := noise.New(
//		noise.WithSeed(42),
//		noise.WithFrequency(8),
//		noise.WithWaveLength(16.0),
//		noise.WithRange(0, 255),
//	)
//	if err != nil { ... }
//	heights, err := eng.Noise(xs, ys) // one value per aligned sample
//
// See examples/ for terrain, animation, and layered-texture scenarios.
package nperlin
