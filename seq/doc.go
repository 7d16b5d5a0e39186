// Package seq provides validated DNA and RNA sequence values and four
// interchangeable storage strategies for RNA, all bound to one contract:
// the same validation, the same value equality, and the same canonical
// Rna("...") rendering, no matter which strategy backs the sequence.
//
// 🚀 The four RNA backends:
//
//	RNA    — owned storage sized exactly to length (no leftover slots)
//	Fixed  — fixed-capacity storage plus a valid-prefix length; slots past
//	         the length are structurally unreachable
//	Buffer — caller-supplied storage, held exclusively until Release
//	Lazy   — no RNA stored at all; reads transcribe the source DNA on the
//	         fly, byte for byte
//
// ✨ The contract:
//
//   - Construction from text validates against the RNA alphabet and fails
//     with the 0-based index of the first invalid base
//   - Construction from DNA (already validated) always has enough input —
//     only the bounded backends can fail, and only with *OverflowError,
//     a condition distinct from alphabet violations
//   - Equal compares logical base sequences: an owned "CGAU" equals a lazy
//     view over DNA "GCTA", and a Fixed of capacity 4 equals a Fixed of
//     capacity 12 holding the same four bases
//   - String renders exactly Rna("<bases>") for every backend, resolving
//     lazy views through the transcriber at format time
//   - Unused capacity in Fixed and Buffer never influences equality,
//     formatting, or iteration, so a future shrinking mutation cannot
//     leak stale bytes
//
// ⚙️ Usage:
//
//	import "github.com/strandkit/strand/seq"
//
//	dna, err := seq.NewDNA("ACGTGGTCTTAA") // err: index of first bad base
//	rna := dna.ToRNA()                     // owned, eager
//	lzy := dna.ToLazy()                    // nothing materialized
//	seq.Equal(rna, lzy)                    // true
//	fmt.Println(rna)                       // Rna("UGCACCAGAAUU")
//
// Concurrency: none needed — every operation is a pure, synchronous
// computation over in-memory bytes. The one sharing rule is Buffer's:
// the caller must not touch the supplied slice while the Buffer is alive
// (see Buffer.Release).
//
// Performance: construction and comparison are O(n) time; Equal is
// O(min(len)) with early exit and never materializes a lazy side.
//
// See example_test.go for runnable examples.
package seq
