package alphabet

import (
	"errors"
	"fmt"
)

// ErrInvalidBase indicates a byte outside the requested alphabet.
// The concrete error is always an *InvalidBaseError; use errors.As to
// recover the index of the first offender.
var ErrInvalidBase = errors.New("alphabet: invalid base")

// Alphabet identifies one of the two 4-symbol nucleotide alphabets.
type Alphabet uint8

const (
	// DNA is the alphabet {A, C, G, T}.
	DNA Alphabet = iota

	// RNA is the alphabet {A, C, G, U}.
	RNA
)

// Byte-indexed membership tables; the zero value marks a non-member.
var (
	dnaBases [256]bool
	rnaBases [256]bool
)

func init() {
	for _, b := range []byte("ACGT") {
		dnaBases[b] = true
	}
	for _, b := range []byte("ACGU") {
		rnaBases[b] = true
	}
}

// Contains reports whether b is a member of the alphabet.
//
// Complexity: Time O(1), Space O(1).
func (a Alphabet) Contains(b byte) bool {
	if a == RNA {
		return rnaBases[b]
	}
	return dnaBases[b]
}

// String returns "DNA" or "RNA".
func (a Alphabet) String() string {
	if a == RNA {
		return "RNA"
	}
	return "DNA"
}

// InvalidBaseError reports the first byte of a scanned string that is not
// a member of the requested alphabet.
type InvalidBaseError struct {
	// Index is the 0-based position of the offending byte.
	Index int

	// Base is the offending byte itself.
	Base byte

	// Alphabet is the alphabet the scan was checking against.
	Alphabet Alphabet
}

// Error implements the error interface.
func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("alphabet: invalid %s base %q at index %d", e.Alphabet, e.Base, e.Index)
}

// Is makes errors.Is(err, ErrInvalidBase) succeed for this error.
func (e *InvalidBaseError) Is(target error) bool {
	return target == ErrInvalidBase
}

// Validate scans s left to right and reports the first byte that is not a
// member of a, as an *InvalidBaseError carrying its 0-based index. A nil
// return means every byte of s belongs to a; the empty string is valid.
//
// There are no partial results: on failure nothing about the suffix past
// the offender is examined or reported.
//
// Complexity: Time O(len(s)), Space O(1).
func Validate(s string, a Alphabet) error {
	for i := 0; i < len(s); i++ {
		if !a.Contains(s[i]) {
			return &InvalidBaseError{Index: i, Base: s[i], Alphabet: a}
		}
	}
	return nil
}
