// Package lrustore implements the bounded, recency-ordered store backing a
// machine's memoization. Entries are keyed by sequence index and evicted by
// two independent triggers: total entry count (strict LRU) and staleness,
// measured in ticks of a logical clock rather than wall time so eviction is
// fully deterministic.
//
// A Store is not safe for concurrent use. The machine that owns it serializes
// all access; see the root package for the exclusive-access contract.
package lrustore

// EvictReason tells an eviction callback why an entry was dropped.
type EvictReason int

const (
	// Capacity means the entry was the least recently used when the store
	// exceeded its entry cap.
	Capacity EvictReason = iota
	// Age means the entry's ticks since last access exceeded the store's
	// max age.
	Age
)

func (r EvictReason) String() string {
	if r == Age {
		return "age"
	}
	return "capacity"
}

// OnEvictFunc is called when an entry is evicted from the store.
type OnEvictFunc[V any] func(n int64, value V, reason EvictReason)

// Store is a bounded associative store from sequence index to term value,
// ordered by recency of access. A Store must be created with [New]; the zero
// value is not ready for use.
type Store[V any] struct {
	capacity int
	maxAge   uint64
	clock    uint64 // next tick to hand out
	items    map[int64]*entry[V]
	head     *entry[V] // most recently used
	tail     *entry[V] // least recently used
	onEvict  OnEvictFunc[V]
}

// entry is an intrusive doubly-linked list node. List order is access order,
// head freshest, so the tail is always the LRU candidate and the stalest
// entry at once.
type entry[V any] struct {
	key        int64
	val        V
	lastAccess uint64
	prev       *entry[V]
	next       *entry[V]
}

// New creates a store holding at most capacity entries, each living at most
// maxAge clock ticks past its last access. Both bounds are explicit: capacity
// 0 retains nothing, maxAge 0 keeps an entry only until the next
// clock-advancing access.
func New[V any](capacity int, maxAge uint64) *Store[V] {
	return &Store[V]{
		capacity: capacity,
		maxAge:   maxAge,
		items:    make(map[int64]*entry[V]),
	}
}

// OnEvict registers a callback invoked synchronously for every evicted entry,
// with the reason it was dropped. Explicit overwrites via Insert do not count
// as evictions.
func (s *Store[V]) OnEvict(f OnEvictFunc[V]) { s.onEvict = f }

// Get returns the value cached for index n. A hit refreshes the entry's
// last-access tick and makes it the most recently used; a miss mutates
// nothing, the clock included.
func (s *Store[V]) Get(n int64) (V, bool) {
	var zero V
	e, ok := s.items[n]
	if !ok {
		return zero, false
	}
	now := s.tick()
	e.lastAccess = now
	s.moveToFront(e)
	s.sweep(now)
	return e.val, true
}

// Insert stores value under index n. Re-inserting an existing index is an
// overwrite-and-touch: entry count is unchanged and the entry becomes the
// most recently used. A new index is inserted at the front, then the least
// recently used entries are evicted while the store exceeds capacity, ties
// resolved by insertion order (earliest evicted first). Either way, stale
// entries are swept afterwards.
func (s *Store[V]) Insert(n int64, value V) {
	now := s.tick()
	if e, ok := s.items[n]; ok {
		e.val = value
		e.lastAccess = now
		s.moveToFront(e)
		s.sweep(now)
		return
	}

	e := &entry[V]{key: n, val: value, lastAccess: now}
	s.items[n] = e
	s.pushFront(e)

	for len(s.items) > s.capacity && s.tail != nil {
		s.evict(s.tail, Capacity)
	}
	s.sweep(now)
}

// Len returns the current number of entries. No side effects.
func (s *Store[V]) Len() int { return len(s.items) }

// Contains reports whether index n is cached, without touching recency or
// the clock.
func (s *Store[V]) Contains(n int64) bool {
	_, ok := s.items[n]
	return ok
}

// Keys returns the cached indices ordered most to least recently used.
func (s *Store[V]) Keys() []int64 {
	keys := make([]int64, 0, len(s.items))
	for e := s.head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Clock returns the next tick the store will assign. It advances on every
// hit and insert, never on a miss.
func (s *Store[V]) Clock() uint64 { return s.clock }

// tick consumes and returns the current tick.
func (s *Store[V]) tick() uint64 {
	t := s.clock
	s.clock++
	return t
}

// sweep drops every entry whose age relative to tick now exceeds maxAge.
// Tail order is oldest-access-first, so it stops at the first fresh entry.
func (s *Store[V]) sweep(now uint64) {
	for s.tail != nil && now-s.tail.lastAccess > s.maxAge {
		s.evict(s.tail, Age)
	}
}

func (s *Store[V]) evict(e *entry[V], reason EvictReason) {
	s.remove(e)
	delete(s.items, e.key)
	if s.onEvict != nil {
		s.onEvict(e.key, e.val, reason)
	}
}

func (s *Store[V]) moveToFront(e *entry[V]) {
	if s.head == e {
		return
	}
	s.remove(e)
	s.pushFront(e)
}

func (s *Store[V]) pushFront(e *entry[V]) {
	e.prev = nil
	e.next = s.head
	if s.head != nil {
		s.head.prev = e
	}
	s.head = e
	if s.tail == nil {
		s.tail = e
	}
}

func (s *Store[V]) remove(e *entry[V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		s.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		s.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}
