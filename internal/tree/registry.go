package tree

import "math"

// Symbol is one position of a registered string. Text bytes map to their
// value; the terminator of string k maps to math.MinInt32+k, so every string
// ends with its own sentinel and all sentinels sort before any text byte.
type Symbol int32

// IsTerminator reports whether s is a string sentinel.
func (s Symbol) IsTerminator() bool { return s < 0 }

func terminator(id int) Symbol { return Symbol(math.MinInt32 + int32(id)) }

// Registry owns the indexed strings in insertion order.
type Registry struct {
	texts []string
}

// Register stores text and returns its id. The sentinel is implicit.
func (r *Registry) Register(text string) int {
	r.texts = append(r.texts, text)
	return len(r.texts) - 1
}

// Count returns the number of registered strings.
func (r *Registry) Count() int { return len(r.texts) }

// Text returns the string registered under id, without its sentinel.
func (r *Registry) Text(id int) string { return r.texts[id] }

// Len returns the length of string id including its sentinel.
func (r *Registry) Len(id int) int { return len(r.texts[id]) + 1 }

// At returns the symbol at pos in string id.
func (r *Registry) At(id, pos int) Symbol {
	text := r.texts[id]
	if pos == len(text) {
		return terminator(id)
	}
	return Symbol(text[pos])
}

// Suffixes returns the total number of suffixes, sentinel-only ones included.
func (r *Registry) Suffixes() int {
	n := 0
	for _, text := range r.texts {
		n += len(text) + 1
	}
	return n
}
