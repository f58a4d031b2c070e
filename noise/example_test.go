// SPDX-License-Identifier: MIT

package noise_test

import (
	"fmt"

	"github.com/katalvlaran/nperlin/noise"
	"github.com/katalvlaran/nperlin/warp"
)

// ExampleNew builds an engine with explicit parameters and prints its
// configuration. Four lattice nodes span each 1.0-unit period, so the
// internodal spacing is 0.25.
func ExampleNew() {
	eng, err := noise.New(
		noise.WithSeed(42),
		noise.WithFrequency(4),
		noise.WithWaveLength(1.0),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(eng)
	fmt.Println(eng.Amp())
	// Output:
	// <seed:42 freq:[4] wLen:[1] range:(0,1) fwm:1>
	// [0.25]
}

// ExampleEngine_Noise samples a 1D batch. Output is deterministic for a
// fixed seed and always inside the configured range.
func ExampleEngine_Noise() {
	eng, _ := noise.New(
		noise.WithSeed(42),
		noise.WithFrequency(4),
		noise.WithWaveLength(1.0),
		noise.WithRange(0, 255),
	)

	heights, err := eng.Noise([]float64{0, 0.1, 0.2, 0.3, 0.4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	inRange := true
	for _, h := range heights {
		if h < 0 || h > 255 {
			inRange = false
		}
	}
	fmt.Println(len(heights), inRange)

	again, _ := eng.Noise([]float64{0, 0.1, 0.2, 0.3, 0.4})
	fmt.Println(heights[2] == again[2])
	// Output:
	// 5 true
	// true
}

// ExampleEngine_At shows seamless tiling: the lattice wraps every
// effective wave length, so x and x+1.0 sample the same cell.
func ExampleEngine_At() {
	eng, _ := noise.New(
		noise.WithSeed(7),
		noise.WithFrequency(4),
		noise.WithWaveLength(1.0),
		noise.WithWarp(warp.Linear()),
	)

	a, _ := eng.At(0.125)
	b, _ := eng.At(1.125)
	fmt.Println(a == b)
	// Output:
	// true
}
