// Package nthterm computes Nth terms of monotonically-indexed integer
// sequences and memoizes the results in a bounded cache, so repeated or
// overlapping queries skip recomputation. Eviction combines two independent
// triggers: entry count (strict LRU) and staleness, measured on a logical
// access clock so behavior is deterministic.
//
// Components:
//   - seq.Strategy[V]: pure Nth-term computation (Fibonacci, Primes,
//     Harmonic), with read-through access to cached smaller indices via a
//     narrow lookup.
//   - lrustore.Store[V]: index-keyed store ordered by recency, bounded by
//     capacity and max age.
//   - Machine[V]: binds one strategy to one store and exposes Calculate,
//     the only evaluation operation.
//
// Usage:
//
//	m, err := nthterm.New(nthterm.Options[uint64]{
//	    Strategy: seq.Fibonacci{},
//	    Capacity: 128,
//	    MaxAge:   50,
//	})
//	v, err := m.Calculate(10) // 55
//
// A Machine is single-threaded: Calculate both reads and writes the store,
// including nested reads during strategy computation, so concurrent use must
// be serialized by the caller. The cache lives and dies with its Machine;
// nothing is persisted.
package nthterm
