package prng

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// float53 scales a 53-bit hash prefix into [0,1).
const float53 = 1.0 / (1 << 53)

// Lattice is a seed-keyed, content-addressed source of lattice random
// values. The value at an absolute multi-index is a pure function of
// (seed, index); it never depends on which window was requested around it.
// Safe for concurrent reads; SetSeed must not race with reads.
type Lattice struct {
	seed int64
}

// New returns a Lattice keyed by the given seed.
func New(seed int64) *Lattice {
	return &Lattice{seed: seed}
}

// NewRandom returns a Lattice keyed by a randomly chosen seed.
func NewRandom() *Lattice {
	return &Lattice{seed: rand.Int64()}
}

// Seed reports the current seed.
func (l *Lattice) Seed() int64 {
	return l.seed
}

// SetSeed rekeys the lattice. All node values change deterministically.
func (l *Lattice) SetSeed(seed int64) {
	l.seed = seed
}

// At returns the lattice value at the given absolute multi-index.
// Complexity: O(len(index)).
func (l *Lattice) At(index ...int) float64 {
	var buf [8]byte
	d := xxhash.New()
	binary.LittleEndian.PutUint64(buf[:], uint64(l.seed))
	_, _ = d.Write(buf[:])
	for _, i := range index {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		_, _ = d.Write(buf[:])
	}

	// Top 53 bits keep the value exactly representable in a float64.
	return float64(d.Sum64()>>11) * float53
}

// Window materializes the dense axis-aligned block of lattice values with
// the given per-axis extents starting at offset, in row-major order with
// axis 0 slowest. Every cell equals At(absolute index) for that cell.
// Returns ErrShapeMismatch or ErrBadShape on malformed requests.
// Complexity: O(len(shape)·∏shape).
func (l *Lattice) Window(shape, offset []int) ([]float64, error) {
	if len(shape) != len(offset) {
		return nil, ErrShapeMismatch
	}
	total := 1
	for _, s := range shape {
		if s < 1 {
			return nil, ErrBadShape
		}
		total *= s
	}

	dims := len(shape)
	idx := make([]int, dims)
	copy(idx, offset)
	out := make([]float64, total)
	for cell := 0; cell < total; cell++ {
		out[cell] = l.At(idx...)
		// Advance the multi-index, last axis fastest.
		for d := dims - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < offset[d]+shape[d] {
				break
			}
			idx[d] = offset[d]
		}
	}

	return out, nil
}
