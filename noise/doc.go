// SPDX-License-Identifier: MIT

// Package noise implements deterministic, continuous, tileable value noise
// over an arbitrary number of dimensions, parameterized per axis by lattice
// density (frequency), spatial scale (wave length), blend curve (warp), and
// output range.
//
// What:
//
//   - Engine owns the configuration and runs the sampling pipeline:
//     coordinate formatting → lattice bounds resolution → minimal window
//     fetch → warped hypercube collapse → range mapping.
//   - The lattice is conceptually infinite and periodic with period
//     effectiveFrequency per axis, so output tiles seamlessly every
//     effectiveWaveLength along each dimension.
//   - Random lattice values come from a GridProvider (see package prng):
//     content-addressed by (seed, absolute index), so only the minimal
//     bounding window of each call is ever materialized.
//
// Why:
//
//   - Terrain heightmaps, texture synthesis, animation offsets: anywhere
//     reproducible spatial variation is needed without storing it.
//   - Per-axis parameters broadcast (see package axis), so a single
//     frequency covers any number of dimensions.
//
// Complexity:
//
//   - One call over N samples in D dimensions: O(N·2^D·D) interpolation
//     time plus the provider window cost. Corner count doubles per added
//     dimension; D is the knob to watch.
//   - Memory is bounded by the fetched window, at most
//     ∏ effectiveFrequency[d] cells regardless of coordinate magnitude,
//     because lattice indices wrap before the window is computed.
//
// Concurrency:
//
//   - Sampling is a pure function of (configuration, seed, coordinates).
//     Concurrent calls are safe as long as no setter runs mid-flight;
//     the engine takes no locks. Large batches interpolate in parallel
//     internally.
//
// Errors:
//
//   - ErrBadFrequency, ErrBadWaveLength, ErrBadWarp, ErrBadRange,
//     ErrBadFWM, ErrNilSource: eager configuration validation.
//   - ErrEmptyAxis, ErrBadCoordinate: malformed sampling input.
package noise
