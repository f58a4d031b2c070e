// SPDX-License-Identifier: MIT

package noise_test

import (
	"testing"

	"github.com/katalvlaran/nperlin/noise"
)

// benchmarkNoise samples n points across dims dimensions per iteration.
// Corner enumeration grows as 2^dims, so the dims axis is the interesting one.
func benchmarkNoise(b *testing.B, dims, n int) {
	eng, err := noise.New(
		noise.WithSeed(1),
		noise.WithFrequency(8),
		noise.WithWaveLength(16.0),
	)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	axes := make([][]float64, dims)
	for d := range axes {
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = float64(i) * 0.37
		}
		axes[d] = xs
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = eng.Noise(axes...); err != nil {
			b.Fatalf("Noise failed: %v", err)
		}
	}
}

// BenchmarkNoise_1D_Small benchmarks 1D sampling of 100 points.
func BenchmarkNoise_1D_Small(b *testing.B) { benchmarkNoise(b, 1, 100) }

// BenchmarkNoise_1D_Batch benchmarks 1D sampling of 10k points (parallel path).
func BenchmarkNoise_1D_Batch(b *testing.B) { benchmarkNoise(b, 1, 10000) }

// BenchmarkNoise_2D benchmarks 2D sampling of 1k points (4 corners).
func BenchmarkNoise_2D(b *testing.B) { benchmarkNoise(b, 2, 1000) }

// BenchmarkNoise_4D benchmarks 4D sampling of 1k points (16 corners).
func BenchmarkNoise_4D(b *testing.B) { benchmarkNoise(b, 4, 1000) }

// BenchmarkNoise_8D benchmarks 8D sampling of 100 points (256 corners) -
// the corner-enumeration bottleneck made visible.
func BenchmarkNoise_8D(b *testing.B) { benchmarkNoise(b, 8, 100) }
