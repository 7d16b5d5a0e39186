package seq

import "github.com/strandkit/strand/alphabet"

// Buffer is the borrowed-mutable backend: it does not own storage but
// holds a caller-supplied slice exclusively, filling buf[0:Len()) and
// exposing only that valid prefix.
//
// Go cannot enforce exclusive borrows at compile time, so the discipline
// is explicit: while a Buffer is alive the caller must not read or write
// the supplied slice, and Release is the one way to get it back. Release
// wipes the written prefix before returning the slice and marks the value
// dead — any later read panics with ErrReleased. Buffer values are
// pointer-shaped for the same reason: a copied flag could not revoke
// access through the other copy.
type Buffer struct {
	buf      []byte // caller storage, nil once released
	n        int    // valid prefix length, n <= len(buf)
	released bool
}

// NewBuffer validates s against the RNA alphabet and copies it into the
// caller's storage, taking the slice over until Release. The alphabet
// check runs first, so an input that is both invalid and too long reports
// the alphabet error. A too-long valid input fails with an
// *OverflowError and leaves buf untouched.
//
// Complexity: Time O(len(s)), Space O(1) beyond the caller's storage.
func NewBuffer(s string, buf []byte) (*Buffer, error) {
	if err := alphabet.Validate(s, alphabet.RNA); err != nil {
		return nil, err
	}
	if len(s) > len(buf) {
		return nil, overflow(len(buf))
	}
	copy(buf, s)
	return &Buffer{buf: buf, n: len(s)}, nil
}

// Len returns the number of valid bases, never the slice capacity.
// It panics with ErrReleased after Release.
func (b *Buffer) Len() int {
	b.check()
	return b.n
}

// Base returns the i-th base of the valid prefix. It panics with
// ErrReleased after Release.
func (b *Buffer) Base(i int) byte {
	b.check()
	return b.buf[:b.n][i]
}

// Written returns how many bases were placed into the caller's storage at
// construction.
func (b *Buffer) Written() int {
	b.check()
	return b.n
}

// String renders the canonical form Rna("<bases>") from the valid prefix
// only. It panics with ErrReleased after Release.
func (b *Buffer) String() string {
	b.check()
	return format(b)
}

// Release wipes the written prefix, returns the storage to the caller,
// and kills the view: every later method call panics with ErrReleased.
// The wipe keeps sequence bytes from outliving the value that guarded
// them.
func (b *Buffer) Release() []byte {
	b.check()
	for i := 0; i < b.n; i++ {
		b.buf[i] = 0
	}
	out := b.buf
	b.buf, b.n, b.released = nil, 0, true
	return out
}

func (b *Buffer) check() {
	if b.released {
		panic(ErrReleased)
	}
}
