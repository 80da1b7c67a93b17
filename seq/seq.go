// Package seq defines the sequence-strategy capability and the reference
// strategies that implement it. A strategy is a pure description of how to
// compute term N of a monotonically-indexed sequence; it holds no cache state
// of its own and sees the owning machine's cache only through the narrow
// Lookup it is handed per call.
package seq

// Lookup gives a strategy read-through access to already-cached lower
// indices. It returns the cached value and whether it was present; a
// strategy must never assume presence. Hits refresh the recency of the
// entry they touch.
type Lookup[V any] func(n int64) (V, bool)

// Strategy computes the Nth term of one sequence.
//
// Nth must be pure with respect to n: given the same index, every invocation
// yields the same value no matter what lookup returns along the way. Indices
// outside the sequence's domain fail with [ErrInvalidIndex]; values that
// would not fit the term type fail with [ErrOverflow].
type Strategy[V any] interface {
	// Name identifies the sequence in logs and metrics.
	Name() string
	// Nth computes the term at index n, optionally consulting lookup for
	// smaller indices.
	Nth(n int64, lookup Lookup[V]) (V, error)
}
