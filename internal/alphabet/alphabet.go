// Package alphabet declares the set of bytes a suffix tree accepts and rejects
// input outside it before construction starts.
package alphabet

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
)

// preset alphabets
const (
	DNA     = "ACGT"
	RNA     = "ACGU"
	Protein = "ACDEFGHIKLMNPQRSTVWY"
)

var presets = map[string]string{
	"dna":     DNA,
	"rna":     RNA,
	"protein": Protein,
}

// Alphabet is an immutable set of accepted bytes.
type Alphabet struct {
	name    string
	symbols mapset.Set
	// lookup is filled from symbols for the per-byte hot path.
	lookup [256]bool
}

// New returns an alphabet made of the bytes of chars. Literal alphabets are
// named by their distinct bytes in ascending order.
func New(chars string) *Alphabet {
	a := &Alphabet{symbols: mapset.NewThreadUnsafeSet()}
	for i := 0; i < len(chars); i++ {
		a.symbols.Add(chars[i])
	}
	a.symbols.Each(func(v interface{}) bool {
		a.lookup[v.(byte)] = true
		return false
	})
	a.name = a.Symbols()
	return a
}

// ASCII returns the printable ASCII alphabet without sentinel.
func ASCII(sentinel byte) *Alphabet {
	var sb strings.Builder
	for b := byte(0x21); b < 0x7f; b++ {
		if b != sentinel {
			sb.WriteByte(b)
		}
	}
	a := New(sb.String())
	a.name = "ascii"
	return a
}

// Parse resolves def to an alphabet. def is either a preset name ("dna",
// "rna", "protein", "ascii") or the literal list of accepted characters.
// The sentinel must not belong to the result.
func Parse(def string, sentinel byte) (*Alphabet, error) {
	if def == "" {
		return nil, errors.New("empty alphabet")
	}

	var a *Alphabet
	lower := strings.ToLower(def)
	switch {
	case lower == "ascii":
		a = ASCII(sentinel)
	case presets[lower] != "":
		a = New(presets[lower])
		a.name = lower
	default:
		for i := 0; i < len(def); i++ {
			if def[i] >= 0x80 {
				return nil, errors.Errorf("alphabet %q: non-ASCII byte 0x%02x", def, def[i])
			}
		}
		a = New(def)
	}

	if a.Contains(sentinel) {
		return nil, errors.Errorf("alphabet %q contains the sentinel %q", def, sentinel)
	}
	return a, nil
}

// Name returns the preset name or the literal characters.
func (a *Alphabet) Name() string { return a.name }

// Size returns the number of accepted bytes.
func (a *Alphabet) Size() int { return a.symbols.Cardinality() }

// Contains reports whether b is accepted.
func (a *Alphabet) Contains(b byte) bool { return a.lookup[b] }

// Symbols returns the accepted bytes in ascending order.
func (a *Alphabet) Symbols() string {
	out := make([]byte, 0, a.symbols.Cardinality())
	a.symbols.Each(func(v interface{}) bool {
		out = append(out, v.(byte))
		return false
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return string(out)
}

// SymbolError reports a byte outside the alphabet.
type SymbolError struct {
	Position int
	Symbol   byte
	Alphabet string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("symbol %q at position %d is not in alphabet %q", e.Symbol, e.Position, e.Alphabet)
}

// Validate returns a *SymbolError for the first byte of text outside a.
func (a *Alphabet) Validate(text string) error {
	for i := 0; i < len(text); i++ {
		if !a.lookup[text[i]] {
			return &SymbolError{Position: i, Symbol: text[i], Alphabet: a.name}
		}
	}
	return nil
}
