// Package strand is your in-memory toolkit for validating nucleotide
// sequences, transcribing DNA to RNA, and holding the result behind
// interchangeable storage strategies.
//
// 🚀 What is strand?
//
//	A small, deterministic library that brings together:
//		• Alphabets: DNA {A,C,G,T} and RNA {A,C,G,U} membership & validation
//		• Transcription: the fixed A→U, C→G, G→C, T→A base substitution
//		• Storage strategies: owned, fixed-capacity, caller-buffer, lazy
//		• One contract: value equality and Rna("...") rendering that never
//		  depend on which strategy backs the sequence
//
// ✨ Why choose strand?
//
//   - Predictable errors – first invalid base reported by 0-based index,
//     capacity overflow is a distinct, typed condition
//   - Leak-safe bounded storage – unused capacity is structurally
//     unreachable; shrinking later cannot expose stale bytes
//   - Pure Go – no cgo, no hidden deps
//   - Strategy-agnostic – compare an owned sequence against a lazy one,
//     or two fixed sequences of different capacities, with one Equal
//
// Under the hood, everything is organized under two subpackages:
//
//	alphabet/ — nucleotide alphabets, validation & the DNA→RNA transcriber
//	seq/      — DNA/RNA entities, the four RNA backends & the equality
//	            and formatting contract they all share
//
// Quick example:
//
//	dna, _ := seq.NewDNA("GCTA")
//	rna, _ := seq.NewRNA("CGAU")
//	seq.Equal(dna.ToLazy(), rna) // true, no RNA ever materialized
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/strandkit/strand
package strand
