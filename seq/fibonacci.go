package seq

// Fibonacci computes terms of the Fibonacci sequence, 0-indexed:
// F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2).
//
// For n >= 2 it first tries to combine the cached n-2 and n-1 terms,
// consulting them in ascending order; when either is missing it falls back
// to iterating up from the base cases. uint64 holds terms through F(93);
// anything past that fails with ErrOverflow.
type Fibonacci struct{}

func (Fibonacci) Name() string { return "fibonacci" }

func (f Fibonacci) Nth(n int64, lookup Lookup[uint64]) (uint64, error) {
	if n < 0 {
		return 0, &IndexError{Strategy: f.Name(), N: n, Err: ErrInvalidIndex}
	}
	if n < 2 {
		return uint64(n), nil
	}

	if a, ok := lookup(n - 2); ok {
		if b, ok := lookup(n - 1); ok {
			sum, ok := checkedAdd(a, b)
			if !ok {
				return 0, &IndexError{Strategy: f.Name(), N: n, Err: ErrOverflow}
			}
			return sum, nil
		}
	}

	var a, b uint64 = 0, 1
	for i := int64(2); i <= n; i++ {
		sum, ok := checkedAdd(a, b)
		if !ok {
			return 0, &IndexError{Strategy: f.Name(), N: n, Err: ErrOverflow}
		}
		a, b = b, sum
	}
	return b, nil
}

func checkedAdd(a, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum >= a
}
