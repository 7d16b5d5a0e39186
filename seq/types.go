// Package seq declares the Sequence contract, sentinel errors, and the
// OverflowError payload shared by the bounded backends.
//
// Errors:
//
//	ErrOverflow - input longer than the fixed/borrowed storage capacity.
//	ErrReleased - read through a Buffer after Release returned its storage.
package seq

import (
	"errors"
	"fmt"
)

// Sentinel errors for sequence construction and access.
var (
	// ErrOverflow indicates the input is longer than the bounded storage
	// backing the sequence. It is always carried by an *OverflowError and
	// is a distinct condition from alphabet.ErrInvalidBase.
	ErrOverflow = errors.New("seq: sequence exceeds storage capacity")

	// ErrReleased indicates a read through a Buffer whose storage was
	// already returned to the caller via Release.
	ErrReleased = errors.New("seq: use of released buffer sequence")
)

// Sequence is the read contract every RNA backend implements: a logical,
// ordered run of RNA bases. Equality and formatting speak only this
// interface, which is what makes them representation-independent — the
// bounded backends expose the valid prefix alone, and Lazy transcribes
// its DNA source on every Base call.
type Sequence interface {
	// Len returns the number of logical bases.
	Len() int

	// Base returns the i-th logical base; it panics if i is out of
	// [0, Len()).
	Base(i int) byte
}

// OverflowError reports a construction attempt whose input did not fit the
// declared storage capacity. Nothing is written on rejection: caller
// buffers stay untouched and no access outside the capacity occurs.
type OverflowError struct {
	// Cap is the declared capacity of the storage.
	Cap int

	// Written is the number of bases the storage could have accepted
	// before overflowing.
	Written int
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("seq: sequence exceeds storage capacity %d (accepted %d)", e.Cap, e.Written)
}

// Is makes errors.Is(err, ErrOverflow) succeed for this error.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}
