package batch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLength indicates input and output slices of different lengths.
var ErrLength = errors.New("batch: length mismatch")

// ElementError records the failure of one element.
type ElementError struct {
	Index int
	Err   error
}

func (e ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e ElementError) Unwrap() error { return e.Err }

// Error lists every failing element of a batch in index order. The
// outputs of failing elements are zero; all other outputs are valid.
type Error struct {
	Failures []ElementError
}

func (e *Error) Error() string {
	const shown = 3
	var b strings.Builder
	fmt.Fprintf(&b, "batch: %d element(s) failed", len(e.Failures))
	for i, f := range e.Failures {
		if i == shown {
			b.WriteString("; ...")
			break
		}
		b.WriteString("; ")
		b.WriteString(f.Error())
	}
	return b.String()
}

// Unwrap exposes the element errors to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

func lengthError(what string, got, want int) error {
	return fmt.Errorf("%w: %s has %d elements, want %d", ErrLength, what, got, want)
}
