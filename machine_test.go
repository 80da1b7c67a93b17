package nthterm

import (
	"errors"
	"testing"

	"github.com/nthterm/nthterm/seq"
)

func newFibMachine(t *testing.T, capacity int, maxAge uint64) *Machine[uint64] {
	t.Helper()
	m, err := New(Options[uint64]{
		Strategy: seq.Fibonacci{},
		Capacity: capacity,
		MaxAge:   maxAge,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Options[uint64]{Capacity: 4, MaxAge: 10}); err == nil {
		t.Fatal("New accepted a nil strategy")
	}
	if _, err := New(Options[uint64]{Strategy: seq.Fibonacci{}, Capacity: -1}); err == nil {
		t.Fatal("New accepted a negative capacity")
	}
	// 0 is legal for both bounds, just degenerate.
	if _, err := New(Options[uint64]{Strategy: seq.Fibonacci{}}); err != nil {
		t.Fatalf("New rejected zero bounds: %v", err)
	}
}

func TestFibonacciLiterals(t *testing.T) {
	m := newFibMachine(t, 128, 100)
	for _, tc := range []struct {
		n    int64
		want uint64
	}{{0, 0}, {1, 1}, {10, 55}, {26, 121393}} {
		got, err := m.Calculate(tc.n)
		if err != nil {
			t.Fatalf("Calculate(%d): %v", tc.n, err)
		}
		if got != tc.want {
			t.Fatalf("Calculate(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

// TestEvictionWalk drives the capacity-2 machine through 0,1,2,0 and checks
// the store contents after each eviction point.
func TestEvictionWalk(t *testing.T) {
	m := newFibMachine(t, 2, 100)

	for _, n := range []int64{0, 1} {
		if _, err := m.Calculate(n); err != nil {
			t.Fatalf("Calculate(%d): %v", n, err)
		}
	}

	// Computing 2 touches 0 then 1 as sub-lookups, then inserts 2, which
	// pushes the store over capacity and evicts 0 as least recently used.
	v, err := m.Calculate(2)
	if err != nil {
		t.Fatalf("Calculate(2): %v", err)
	}
	if v != 1 {
		t.Fatalf("Calculate(2) = %d, want 1", v)
	}
	if m.Contains(0) || !m.Contains(1) || !m.Contains(2) {
		t.Fatalf("store should hold {1,2}: 0=%v 1=%v 2=%v",
			m.Contains(0), m.Contains(1), m.Contains(2))
	}

	// 0 is gone, so this is a miss; its re-insertion evicts 1.
	v, err = m.Calculate(0)
	if err != nil {
		t.Fatalf("Calculate(0): %v", err)
	}
	if v != 0 {
		t.Fatalf("Calculate(0) = %d, want 0", v)
	}
	if m.Contains(1) || !m.Contains(0) || !m.Contains(2) {
		t.Fatalf("store should hold {0,2}: 0=%v 1=%v 2=%v",
			m.Contains(0), m.Contains(1), m.Contains(2))
	}
	if m.Len() != 2 {
		t.Fatalf("len = %d, want 2", m.Len())
	}
}

// TestHitMatchesRecompute: hitting the cache never changes the answer.
func TestHitMatchesRecompute(t *testing.T) {
	warm := newFibMachine(t, 64, 1000)
	for _, n := range []int64{20, 19, 20, 21, 20} {
		if _, err := warm.Calculate(n); err != nil {
			t.Fatalf("warmup Calculate(%d): %v", n, err)
		}
	}
	for _, n := range []int64{19, 20, 21} {
		fresh := newFibMachine(t, 64, 1000)
		want, err := fresh.Calculate(n)
		if err != nil {
			t.Fatalf("fresh Calculate(%d): %v", n, err)
		}
		got, err := warm.Calculate(n)
		if err != nil {
			t.Fatalf("warm Calculate(%d): %v", n, err)
		}
		if got != want {
			t.Fatalf("cached Calculate(%d) = %d, recompute = %d", n, got, want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	m := newFibMachine(t, 4, 2) // tight bounds so hits and misses interleave
	want, err := m.Calculate(30)
	if err != nil {
		t.Fatalf("Calculate(30): %v", err)
	}
	for i := 0; i < 10; i++ {
		for _, n := range []int64{30, 5, 12, 30} {
			if _, err := m.Calculate(n); err != nil {
				t.Fatalf("Calculate(%d): %v", n, err)
			}
		}
		got, err := m.Calculate(30)
		if err != nil {
			t.Fatalf("Calculate(30): %v", err)
		}
		if got != want {
			t.Fatalf("Calculate(30) = %d on round %d, want %d", got, i, want)
		}
	}
}

func TestDomainErrorLeavesCacheUnchanged(t *testing.T) {
	m := newFibMachine(t, 8, 100)
	for _, n := range []int64{3, 4, 5} {
		if _, err := m.Calculate(n); err != nil {
			t.Fatalf("Calculate(%d): %v", n, err)
		}
	}
	before := m.Len()

	if _, err := m.Calculate(-4); !errors.Is(err, seq.ErrInvalidIndex) {
		t.Fatalf("Calculate(-4) err = %v, want ErrInvalidIndex", err)
	}
	if _, err := m.Calculate(500); !errors.Is(err, seq.ErrOverflow) {
		t.Fatalf("Calculate(500) err = %v, want ErrOverflow", err)
	}

	if m.Len() != before {
		t.Fatalf("len changed across failed calculations: %d -> %d", before, m.Len())
	}
	if m.Contains(-4) || m.Contains(500) {
		t.Fatal("failed index was cached")
	}
}

type countingMetrics struct {
	hits, misses, evictions, expirations int
}

func (c *countingMetrics) Hit()      { c.hits++ }
func (c *countingMetrics) Miss()     { c.misses++ }
func (c *countingMetrics) Eviction() { c.evictions++ }
func (c *countingMetrics) Expire()   { c.expirations++ }

func TestMetricsEvents(t *testing.T) {
	var cm countingMetrics
	m, err := New(Options[uint64]{
		Strategy: seq.Fibonacci{},
		Capacity: 2,
		MaxAge:   100,
		Metrics:  &cm,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, n := range []int64{0, 1, 2, 0} { // the eviction walk again
		if _, err := m.Calculate(n); err != nil {
			t.Fatalf("Calculate(%d): %v", n, err)
		}
	}
	if _, err := m.Calculate(0); err != nil { // plain hit
		t.Fatalf("Calculate(0): %v", err)
	}

	if cm.misses != 4 || cm.hits != 1 {
		t.Fatalf("hits=%d misses=%d, want 1/4", cm.hits, cm.misses)
	}
	if cm.evictions != 2 {
		t.Fatalf("evictions = %d, want 2", cm.evictions)
	}
	if cm.expirations != 0 {
		t.Fatalf("expirations = %d, want 0", cm.expirations)
	}
}

func TestPrimesMachine(t *testing.T) {
	m, err := New(Options[uint64]{Strategy: seq.Primes{}, Capacity: 32, MaxAge: 100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Ascending queries reuse each predecessor through the lookup seed.
	want := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	for i, w := range want {
		got, err := m.Calculate(int64(i + 1))
		if err != nil {
			t.Fatalf("Calculate(%d): %v", i+1, err)
		}
		if got != w {
			t.Fatalf("prime %d = %d, want %d", i+1, got, w)
		}
	}
	if got, _ := m.Calculate(26); got != 101 {
		t.Fatalf("prime 26 = %d, want 101", got)
	}
}

func TestHarmonicMachine(t *testing.T) {
	m, err := New(Options[float64]{Strategy: seq.Harmonic{}, Capacity: 16, MaxAge: 100})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := m.Calculate(2)
	if err != nil {
		t.Fatalf("Calculate(2): %v", err)
	}
	if got != 1.5 {
		t.Fatalf("H(2) = %v, want 1.5", got)
	}
}
