package tree

import (
	"github.com/RoaringBitmap/roaring"
)

// locus returns the node at or below which pattern ends, or false when
// pattern does not occur.
func (t *Tree) locus(pattern string) (NodeID, bool) {
	cur := Root
	i := 0
	for i < len(pattern) {
		idx, ok := t.findChild(cur, Symbol(pattern[i]))
		if !ok {
			return 0, false
		}
		child := t.nodes[cur].children[idx]
		c := &t.nodes[child]
		for pos := c.start; pos < c.end && i < len(pattern); pos++ {
			if t.reg.At(c.source, pos) != Symbol(pattern[i]) {
				return 0, false
			}
			i++
		}
		cur = child
	}
	return cur, true
}

// Contains reports whether pattern occurs in any indexed string.
func (t *Tree) Contains(pattern string) bool {
	_, ok := t.locus(pattern)
	return ok
}

// SourceSet returns the ids of the strings containing pattern.
func (t *Tree) SourceSet(pattern string) *roaring.Bitmap {
	set := roaring.New()
	id, ok := t.locus(pattern)
	if !ok {
		return set
	}
	for _, leaf := range t.leaves(id) {
		set.Add(uint32(t.nodes[leaf].source))
	}
	return set
}

// Sources returns the ascending ids of the strings containing pattern.
func (t *Tree) Sources(pattern string) []int {
	ids := t.SourceSet(pattern).ToArray()
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
