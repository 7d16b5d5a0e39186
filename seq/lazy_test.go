package seq_test

import (
	"testing"

	"github.com/strandkit/strand/alphabet"
	"github.com/strandkit/strand/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLazy_Valid verifies the given-as-RNA origin: bases read back
// untranscribed.
func TestNewLazy_Valid(t *testing.T) {
	l, err := seq.NewLazy("CGAU")
	require.NoError(t, err)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, byte('C'), l.Base(0))
	assert.Equal(t, `Rna("CGAU")`, l.String())
}

// TestNewLazy_FirstOffender verifies lazy construction still validates
// eagerly — only the materialization is deferred.
func TestNewLazy_FirstOffender(t *testing.T) {
	_, err := seq.NewLazy("ACGUTTXCUUAA")
	require.Error(t, err)

	var ibe *alphabet.InvalidBaseError
	require.ErrorAs(t, err, &ibe)
	assert.Equal(t, 4, ibe.Index)
}

// TestLazy_FromDNA verifies every read resolves through the transcriber:
// the DNA text is stored as-is, the RNA view of it is what observers see.
func TestLazy_FromDNA(t *testing.T) {
	d, err := seq.NewDNA("GCTA")
	require.NoError(t, err)

	l := d.ToLazy()
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, byte('C'), l.Base(0), "G transcribes to C on read")
	assert.Equal(t, byte('G'), l.Base(1))
	assert.Equal(t, byte('A'), l.Base(2))
	assert.Equal(t, byte('U'), l.Base(3))
	assert.Equal(t, `Rna("CGAU")`, l.String(), "format resolves through the transcriber")
}

// TestLazy_MatchesEagerByteForByte verifies the deferred view is
// observationally identical to the eager one over a longer sequence.
func TestLazy_MatchesEagerByteForByte(t *testing.T) {
	d, err := seq.NewDNA("ACGTGGTCTTAA")
	require.NoError(t, err)

	eager := d.ToRNA()
	lazy := d.ToLazy()

	require.Equal(t, eager.Len(), lazy.Len())
	for i := 0; i < eager.Len(); i++ {
		assert.Equal(t, eager.Base(i), lazy.Base(i), "base %d", i)
	}
	assert.Equal(t, eager.String(), lazy.String())
	assert.True(t, seq.Equal(eager, lazy))
}

// TestLazy_ZeroValue verifies the zero value is the empty sequence.
func TestLazy_ZeroValue(t *testing.T) {
	var l seq.Lazy
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, `Rna("")`, l.String())
}
