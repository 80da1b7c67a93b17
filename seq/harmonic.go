package seq

// Harmonic computes partial sums of the harmonic series:
// H(0)=0, H(n)=H(n-1)+1/n.
//
// The n-1 term is consulted through lookup first; on a miss the sum is
// rebuilt from 1/1 upward.
type Harmonic struct{}

func (Harmonic) Name() string { return "harmonic" }

func (h Harmonic) Nth(n int64, lookup Lookup[float64]) (float64, error) {
	if n < 0 {
		return 0, &IndexError{Strategy: h.Name(), N: n, Err: ErrInvalidIndex}
	}
	if n == 0 {
		return 0, nil
	}
	if prev, ok := lookup(n - 1); ok {
		return prev + 1/float64(n), nil
	}
	var sum float64
	for i := int64(1); i <= n; i++ {
		sum += 1 / float64(i)
	}
	return sum, nil
}
