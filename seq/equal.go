package seq

import "strings"

// Equal reports whether a and b hold the same logical RNA value: equal
// length and element-wise equal bases. It is representation-independent —
// any two backends compare, including two Fixed of different capacities —
// and it never materializes a lazy side: bases are pulled one at a time
// through the Sequence contract with an early exit on the first mismatch.
//
// Equal is reflexive, symmetric and transitive.
//
// Complexity: Time O(min(a.Len(), b.Len())), Space O(1).
func Equal(a, b Sequence) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if a.Base(i) != b.Base(i) {
			return false
		}
	}
	return true
}

// format renders the canonical debug form Rna("<bases>"). Every backend's
// String delegates here, which is what pins the rendering to the logical
// base run: bounded backends pass only their valid prefix through the
// Sequence contract, and Lazy resolves through the transcriber base by
// base.
func format(s Sequence) string {
	n := s.Len()
	var sb strings.Builder
	sb.Grow(n + len(`Rna("")`))
	sb.WriteString(`Rna("`)
	for i := 0; i < n; i++ {
		sb.WriteByte(s.Base(i))
	}
	sb.WriteString(`")`)
	return sb.String()
}
