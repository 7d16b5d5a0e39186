package alphabet

import "fmt"

// rnaFor maps each DNA base to its RNA transcript; the zero value marks
// bytes outside the DNA alphabet.
var rnaFor [256]byte

func init() {
	rnaFor['A'] = 'U'
	rnaFor['C'] = 'G'
	rnaFor['G'] = 'C'
	rnaFor['T'] = 'A'
}

// Transcribe maps a single DNA base to its RNA transcript:
//
//	A→U, C→G, G→C, T→A
//
// Transcribe is total over the DNA alphabet and panics on any other byte.
// That is a contract violation, not a recoverable condition — callers must
// Validate against DNA first.
//
// Complexity: Time O(1), Space O(1).
func Transcribe(b byte) byte {
	r := rnaFor[b]
	if r == 0 {
		panic(fmt.Sprintf("alphabet: Transcribe called with non-DNA base %q", b))
	}
	return r
}

// TranscribeAll writes the element-wise transcription of src into
// dst[:len(src)], preserving order and length. It panics if dst is shorter
// than src or if src contains a non-DNA byte.
//
// Complexity: Time O(len(src)), Space O(1).
func TranscribeAll(dst []byte, src string) {
	for i := 0; i < len(src); i++ {
		dst[i] = Transcribe(src[i])
	}
}
