package seq_test

import (
	"testing"

	"github.com/strandkit/strand/alphabet"
	"github.com/strandkit/strand/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRNA_Valid verifies construction over clean RNA text.
func TestNewRNA_Valid(t *testing.T) {
	for _, s := range []string{"", "U", "ACGU", "UGCACCAGAAUU"} {
		r, err := seq.NewRNA(s)
		require.NoError(t, err, "NewRNA(%q)", s)
		assert.Equal(t, len(s), r.Len())
	}
}

// TestNewRNA_FirstOffender verifies the 0-based index contract; 'T' is a
// nucleotide letter but not RNA.
func TestNewRNA_FirstOffender(t *testing.T) {
	cases := []struct {
		s     string
		index int
	}{
		{"ACGUTTXCUUAA", 4}, // 'T' is valid DNA, invalid RNA
		{"X", 0},
	}
	for _, tc := range cases {
		_, err := seq.NewRNA(tc.s)
		require.Error(t, err, "NewRNA(%q)", tc.s)

		var ibe *alphabet.InvalidBaseError
		require.ErrorAs(t, err, &ibe)
		assert.Equal(t, tc.index, ibe.Index, "NewRNA(%q) offender index", tc.s)
	}
}

// TestRNA_OwnsItsStorage verifies that mutating the input after
// construction does not change the sequence.
func TestRNA_OwnsItsStorage(t *testing.T) {
	src := []byte("CGAU")
	r, err := seq.NewRNA(string(src))
	require.NoError(t, err)

	src[0] = 'A'
	assert.Equal(t, `Rna("CGAU")`, r.String(), "owned storage is detached from the input")
}

// TestRNA_ZeroValue verifies the zero value is the empty sequence.
func TestRNA_ZeroValue(t *testing.T) {
	var r seq.RNA
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, `Rna("")`, r.String())
}
