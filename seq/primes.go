package seq

import "math"

// Primes computes terms of the prime number sequence, 1-indexed:
// Nth(1)=2, Nth(2)=3, Nth(10)=29. Index 0 and negative indices are outside
// the domain.
//
// The walk steps candidate by candidate with [NextPrime]. When the cache
// already holds a smaller index, the walk is seeded from the largest such
// entry instead of starting over at 2.
type Primes struct{}

func (Primes) Name() string { return "primes" }

func (p Primes) Nth(n int64, lookup Lookup[uint64]) (uint64, error) {
	if n < 1 {
		return 0, &IndexError{Strategy: p.Name(), N: n, Err: ErrInvalidIndex}
	}

	// Seed from the closest cached predecessor, if any. Misses are free:
	// they touch neither recency nor the clock.
	var (
		at    int64
		prime uint64
	)
	for k := n - 1; k >= 1; k-- {
		if v, ok := lookup(k); ok {
			at, prime = k, v
			break
		}
	}

	for ; at < n; at++ {
		next := NextPrime(prime)
		if next < prime {
			return 0, &IndexError{Strategy: p.Name(), N: n, Err: ErrOverflow}
		}
		prime = next
	}
	return prime, nil
}

// IsPrime reports whether n is prime, by 6k±1 trial division.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for step := uint64(5); step*step <= n; step += 6 {
		if n%step == 0 || n%(step+2) == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than n.
// NextPrime(0) is 2. Returns 0 when the next prime does not fit uint64.
func NextPrime(n uint64) uint64 {
	if n == 0 {
		return 2
	}
	if n == 1 || n == 2 {
		return n + 1
	}
	if n%2 == 0 {
		n--
	}
	for {
		if n > math.MaxUint64-2 {
			return 0
		}
		n += 2
		if IsPrime(n) {
			return n
		}
	}
}
