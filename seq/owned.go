package seq

import "github.com/strandkit/strand/alphabet"

// RNA is the owned-growable backend: it owns a buffer sized exactly to
// its length, so there are never leftover slots to guard. The zero value
// is the empty sequence.
type RNA struct {
	buf []byte
}

// NewRNA validates s against the RNA alphabet and copies it into owned
// storage. On failure it returns the *alphabet.InvalidBaseError for the
// first offending byte.
//
// Complexity: Time O(len(s)), Space O(len(s)).
func NewRNA(s string) (RNA, error) {
	if err := alphabet.Validate(s, alphabet.RNA); err != nil {
		return RNA{}, err
	}
	buf := make([]byte, len(s))
	copy(buf, s)
	return RNA{buf: buf}, nil
}

// Len returns the number of bases.
func (r RNA) Len() int { return len(r.buf) }

// Base returns the i-th base.
func (r RNA) Base(i int) byte { return r.buf[i] }

// String renders the canonical form Rna("<bases>").
func (r RNA) String() string { return format(r) }
