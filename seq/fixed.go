package seq

import "github.com/strandkit/strand/alphabet"

// Fixed is the fixed-capacity backend: storage of a declared capacity
// allocated once at construction, plus a length marking the valid prefix.
// Go has no integer type parameters, so the capacity is a runtime value
// with bounds checks at construction rather than a compile-time constant.
//
// Slots in [Len(), Cap()) are structurally unreachable: Base, Equal and
// String read only the valid prefix, never the backing array. Equality is
// therefore capacity-independent, and a later shrinking mutation could not
// leak whatever the trimmed slots held. Copying a Fixed copies the prefix
// discipline along with it.
//
// The zero value is an empty sequence of capacity 0.
type Fixed struct {
	buf []byte // full declared capacity
	n   int    // valid prefix length, n <= len(buf)
}

// NewFixed validates s against the RNA alphabet and copies it into fresh
// storage of the given capacity. The alphabet check runs first, so an
// input that is both invalid and too long reports the alphabet error.
// A too-long valid input fails with an *OverflowError; nothing is
// allocated on rejection.
//
// Complexity: Time O(len(s)), Space O(capacity).
func NewFixed(s string, capacity int) (Fixed, error) {
	if err := alphabet.Validate(s, alphabet.RNA); err != nil {
		return Fixed{}, err
	}
	if capacity < 0 || len(s) > capacity {
		return Fixed{}, overflow(capacity)
	}
	f := Fixed{buf: make([]byte, capacity), n: len(s)}
	copy(f.buf, s)
	return f, nil
}

// Len returns the number of valid bases, never the capacity.
func (f Fixed) Len() int { return f.n }

// Cap returns the declared capacity.
func (f Fixed) Cap() int { return len(f.buf) }

// Base returns the i-th base of the valid prefix; indexes in
// [Len(), Cap()) panic like any out-of-range index.
func (f Fixed) Base(i int) byte { return f.buf[:f.n][i] }

// String renders the canonical form Rna("<bases>") from the valid prefix
// only.
func (f Fixed) String() string { return format(f) }
