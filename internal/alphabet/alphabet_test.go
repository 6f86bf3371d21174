package alphabet

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		def     string
		want    string
		wantErr bool
	}{
		{name: "dna preset", def: "dna", want: DNA},
		{name: "preset is case insensitive", def: "RNA", want: RNA},
		{name: "protein preset", def: "protein", want: Protein},
		{name: "literal", def: "TGCA", want: "ACGT"},
		{name: "literal with duplicates", def: "abba", want: "ab"},
		{name: "empty", def: "", wantErr: true},
		{name: "sentinel inside", def: "AC$", wantErr: true},
		{name: "non ascii", def: "Aé", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, err := Parse(tt.def, '$')
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Symbols())
			assert.Equal(t, len(tt.want), a.Size())
		})
	}
}

func TestASCIIExcludesSentinel(t *testing.T) {
	t.Parallel()

	a, err := Parse("ascii", '#')
	require.NoError(t, err)
	assert.False(t, a.Contains('#'))
	assert.True(t, a.Contains('$'))
	assert.False(t, a.Contains(' '))
	assert.Equal(t, 93, a.Size())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	a := New(DNA)
	assert.NoError(t, a.Validate("GATTACA"))
	assert.NoError(t, a.Validate(""))

	err := a.Validate("GATXACA")
	require.Error(t, err)

	var se *SymbolError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Position)
	assert.Equal(t, byte('X'), se.Symbol)
	assert.Contains(t, err.Error(), "position 3")
}

func TestLiteralNameIsCanonical(t *testing.T) {
	t.Parallel()

	a, err := Parse("TGCAAT", '$')
	require.NoError(t, err)
	assert.Equal(t, "ACGT", a.Name())
	assert.Equal(t, 4, a.Size())

	var se *SymbolError
	require.True(t, errors.As(a.Validate("ACGU"), &se))
	assert.Equal(t, "ACGT", se.Alphabet)

	preset, err := Parse("DNA", '$')
	require.NoError(t, err)
	assert.Equal(t, "dna", preset.Name())
}
