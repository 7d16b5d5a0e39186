package seq

import "github.com/strandkit/strand/alphabet"

// Lazy is the deferred backend: it stores no RNA at all, only the source
// text and an origin tag. A DNA-derived Lazy resolves every read through
// the transcriber on the fly; a text-constructed one reads its RNA text
// directly. Either way the observable base run is identical to an eager
// backend's.
//
// No re-validation happens at read time — the origin tag records which
// alphabet the text was validated against at construction.
type Lazy struct {
	src     string
	fromDNA bool
}

// NewLazy validates s against the RNA alphabet and wraps it without
// copying. On failure it returns the *alphabet.InvalidBaseError for the
// first offending byte.
//
// Complexity: Time O(len(s)), Space O(1).
func NewLazy(s string) (Lazy, error) {
	if err := alphabet.Validate(s, alphabet.RNA); err != nil {
		return Lazy{}, err
	}
	return Lazy{src: s}, nil
}

// Len returns the number of bases; transcription preserves length, so the
// source length is the answer for both origins.
func (l Lazy) Len() int { return len(l.src) }

// Base returns the i-th logical RNA base, transcribing DNA-derived
// sources on the fly.
func (l Lazy) Base(i int) byte {
	if l.fromDNA {
		return alphabet.Transcribe(l.src[i])
	}
	return l.src[i]
}

// String renders the canonical form Rna("<bases>"), resolving through the
// transcriber at format time.
func (l Lazy) String() string { return format(l) }
