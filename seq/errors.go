package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex marks an index outside the sequence's domain.
	ErrInvalidIndex = errors.New("index outside sequence domain")
	// ErrOverflow marks a term whose true value does not fit the term type.
	ErrOverflow = errors.New("term exceeds representable range")
)

// IndexError is the failure a strategy returns for an unanswerable index.
// It unwraps to one of the sentinel errors above.
type IndexError struct {
	Strategy string
	N        int64
	Err      error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("seq: %s(%d): %v", e.Strategy, e.N, e.Err)
}

func (e *IndexError) Unwrap() error { return e.Err }
