package nthterm

import (
	"fmt"

	"github.com/nthterm/nthterm/lrustore"
	"github.com/nthterm/nthterm/seq"
)

// Options tune a machine. Only Strategy is required. Capacity and MaxAge are
// taken literally: 0 is a legal, degenerate bound (a capacity-0 store retains
// nothing; a max-age-0 entry survives only until the next clock-advancing
// access), so neither is coalesced to a default.
type Options[V any] struct {
	// Required
	Strategy seq.Strategy[V]

	Capacity int    // max cached entries
	MaxAge   uint64 // max logical-clock ticks since an entry's last access

	Logger  Logger  // if nil, NopLogger is used
	Metrics Metrics // if nil, NopMetrics is used
}

// Machine couples one sequence strategy with one bounded store and owns both
// exclusively. All evaluation goes through [Machine.Calculate], which needs
// exclusive access for its duration: the machine does no locking of its own,
// so concurrent callers must serialize around it (a mutex, or a single
// owning goroutine). A Machine must not be copied after first use; copying
// would alias the store.
type Machine[V any] struct {
	strategy seq.Strategy[V]
	store    *lrustore.Store[V]
	log      Logger
	metrics  Metrics
}

// New creates a machine evaluating opts.Strategy through a fresh store.
func New[V any](opts Options[V]) (*Machine[V], error) {
	if opts.Strategy == nil {
		return nil, fmt.Errorf("nthterm: strategy is required")
	}
	if opts.Capacity < 0 {
		return nil, fmt.Errorf("nthterm: capacity must not be negative")
	}

	m := &Machine[V]{
		strategy: opts.Strategy,
		store:    lrustore.New[V](opts.Capacity, opts.MaxAge),
		log:      NopLogger{},
		metrics:  NopMetrics{},
	}
	if opts.Logger != nil {
		m.log = opts.Logger
	}
	if opts.Metrics != nil {
		m.metrics = opts.Metrics
	}

	m.store.OnEvict(func(n int64, _ V, reason lrustore.EvictReason) {
		if reason == lrustore.Age {
			m.metrics.Expire()
		} else {
			m.metrics.Eviction()
		}
		m.log.Debug("entry evicted", Fields{"seq": m.strategy.Name(), "n": n, "reason": reason.String()})
	})
	return m, nil
}

// Calculate returns the term at index n, memoizing through the machine's
// store. A cached index is answered without invoking the strategy. On a miss
// the strategy computes the term with read-through access to smaller cached
// indices, and the result is inserted before it is returned. A strategy
// failure propagates unchanged and leaves the cache as it was.
func (m *Machine[V]) Calculate(n int64) (V, error) {
	if v, ok := m.store.Get(n); ok {
		m.metrics.Hit()
		m.log.Debug("cache hit", Fields{"seq": m.strategy.Name(), "n": n})
		return v, nil
	}
	m.metrics.Miss()

	// The lookup handed to the strategy is the store's own Get, so
	// sub-index hits refresh their own recency and nothing else.
	v, err := m.strategy.Nth(n, m.store.Get)
	if err != nil {
		var zero V
		m.log.Warn("strategy failed", Fields{"seq": m.strategy.Name(), "n": n, "err": err})
		return zero, err
	}
	m.store.Insert(n, v)
	m.log.Debug("computed and cached", Fields{"seq": m.strategy.Name(), "n": n})
	return v, nil
}

// Len returns the number of currently cached entries.
func (m *Machine[V]) Len() int { return m.store.Len() }

// Contains reports whether index n is cached, without touching recency.
func (m *Machine[V]) Contains(n int64) bool { return m.store.Contains(n) }
