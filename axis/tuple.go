package axis

// Number constrains tuple arithmetic to the value kinds the noise
// configuration actually carries: lattice counts (int) and lengths (float64).
type Number interface {
	~int | ~int64 | ~float64
}

// Tuple is an ordered, fixed-size sequence of per-axis values.
// Indexing beyond the declared length repeats the last declared value,
// so a Tuple of length 1 broadcasts over any number of dimensions.
// A Tuple is immutable after construction.
type Tuple[T any] struct {
	vals []T
}

// NewTuple builds a Tuple from the given values in axis order.
// Returns ErrEmptyTuple when no values are supplied.
// Complexity: O(len).
func NewTuple[T any](vals ...T) (Tuple[T], error) {
	if len(vals) == 0 {
		return Tuple[T]{}, ErrEmptyTuple
	}
	// Copy to keep the tuple immune to caller mutation.
	own := make([]T, len(vals))
	copy(own, vals)

	return Tuple[T]{vals: own}, nil
}

// At returns the value for axis i. Indices past the declared length
// clamp to the last value (broadcast-last rule).
// Complexity: O(1).
func (t Tuple[T]) At(i int) T {
	if i >= len(t.vals) {
		return t.vals[len(t.vals)-1]
	}

	return t.vals[i]
}

// Len reports the number of declared values.
// Complexity: O(1).
func (t Tuple[T]) Len() int {
	return len(t.vals)
}

// Values returns a copy of the declared values in axis order.
// Complexity: O(len).
func (t Tuple[T]) Values() []T {
	out := make([]T, len(t.vals))
	copy(out, t.vals)

	return out
}

// Scale returns a new Tuple with every value multiplied by k.
// Complexity: O(len).
func Scale[T Number](t Tuple[T], k T) Tuple[T] {
	out := make([]T, len(t.vals))
	for i, v := range t.vals {
		out[i] = v * k
	}

	return Tuple[T]{vals: out}
}

// Div divides num by den elementwise over the first n axes, applying the
// broadcast-last rule to both operands, and returns the per-axis quotients
// as float64. Used to derive internodal spacing (waveLength ÷ frequency).
// Complexity: O(n).
func Div[A, B Number](num Tuple[A], den Tuple[B], n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = float64(num.At(i)) / float64(den.At(i))
	}

	return out
}
