// Package alphabet defines the two 4-symbol nucleotide alphabets and the
// primitive operations every sequence type builds on: membership checks,
// whole-string validation, and the DNA→RNA transcription map.
//
// 🚀 What is alphabet?
//
//	The leaf layer of strand:
//		• Alphabet — DNA {A,C,G,T} or RNA {A,C,G,U}, byte-table backed
//		• Validate — left-to-right scan, first offender by 0-based index
//		• Transcribe — the total map A→U, C→G, G→C, T→A over DNA bases
//
// Validation is strict about context: 'U' is a perfectly good nucleotide
// letter, yet Validate("GATU", DNA) fails at index 3 — membership is
// always checked against the specific alphabet requested. Both "wrong
// alphabet" and "not a nucleotide at all" report the same error shape,
// an *InvalidBaseError carrying the index; callers that need to tell the
// sub-cases apart must inspect the offending byte themselves.
//
// Transcribe is total over the DNA alphabet only. Calling it with any
// other byte is a programmer error and panics; validate first.
//
// ⚙️ Usage:
//
//	import "github.com/strandkit/strand/alphabet"
//
//	if err := alphabet.Validate("ACGT", alphabet.DNA); err != nil {
//		var ibe *alphabet.InvalidBaseError
//		errors.As(err, &ibe) // ibe.Index is the first bad position
//	}
//	u := alphabet.Transcribe('A') // 'U'
//
// Performance:
//
//   - Validate: Time O(n), Space O(1)
//   - Transcribe: Time O(1)
//
// See example_test.go for runnable examples.
package alphabet
