package seq

import "github.com/strandkit/strand/alphabet"

// DNA is an immutable validated view over DNA text. It never owns or
// copies its input — Go strings are immutable views, which is exactly the
// read-only borrow the type needs. Every base is one of {A,C,G,T}.
//
// DNA values are comparable with ==; two are equal iff their texts are.
type DNA struct {
	s string
}

// NewDNA validates s against the DNA alphabet and wraps it. On failure it
// returns the *alphabet.InvalidBaseError for the first offending byte.
//
// Complexity: Time O(len(s)), Space O(1).
func NewDNA(s string) (DNA, error) {
	if err := alphabet.Validate(s, alphabet.DNA); err != nil {
		return DNA{}, err
	}
	return DNA{s: s}, nil
}

// Len returns the number of bases.
func (d DNA) Len() int { return len(d.s) }

// String renders the canonical debug form Dna("<bases>").
func (d DNA) String() string { return `Dna("` + d.s + `")` }

// ToRNA transcribes every base into a new owned RNA sequence. It always
// succeeds: d was validated at construction and owned storage has no
// capacity bound.
//
// Complexity: Time O(n), Space O(n).
func (d DNA) ToRNA() RNA {
	buf := make([]byte, len(d.s))
	alphabet.TranscribeAll(buf, d.s)
	return RNA{buf: buf}
}

// ToFixed transcribes into a fresh fixed-capacity sequence. It fails with
// an *OverflowError when d has more bases than capacity; nothing is
// allocated or written on rejection.
//
// Complexity: Time O(n), Space O(capacity).
func (d DNA) ToFixed(capacity int) (Fixed, error) {
	if capacity < 0 || len(d.s) > capacity {
		return Fixed{}, overflow(capacity)
	}
	f := Fixed{buf: make([]byte, capacity), n: len(d.s)}
	alphabet.TranscribeAll(f.buf, d.s)
	return f, nil
}

// ToBuffer transcribes into the caller's storage, filling buf[0:d.Len()],
// and returns a Buffer view that holds the slice exclusively until
// Release. It fails with an *OverflowError when buf is too small; buf is
// untouched on rejection. Written on the returned Buffer reports how many
// bases were placed.
//
// The caller must not read or write buf while the returned Buffer is
// alive.
//
// Complexity: Time O(n), Space O(1) beyond the caller's storage.
func (d DNA) ToBuffer(buf []byte) (*Buffer, error) {
	if len(d.s) > len(buf) {
		return nil, overflow(len(buf))
	}
	alphabet.TranscribeAll(buf, d.s)
	return &Buffer{buf: buf, n: len(d.s)}, nil
}

// ToLazy returns a deferred view: no transcription happens now, and none
// is ever stored. Each read resolves through the transcriber on the fly,
// producing output identical to an eager backend.
//
// Complexity: Time O(1), Space O(1).
func (d DNA) ToLazy() Lazy {
	return Lazy{src: d.s, fromDNA: true}
}

// overflow builds the rejection for a bounded construction: Written is
// the count of bases the capacity could accept.
func overflow(capacity int) *OverflowError {
	w := capacity
	if w < 0 {
		w = 0
	}
	return &OverflowError{Cap: capacity, Written: w}
}
