package tree

import (
	"sort"

	"github.com/pkg/errors"
)

// BWT returns the Burrows-Wheeler transform of the indexed string and its
// sentinel. Leaves are visited in sorted order, which is suffix order, and
// each contributes the symbol preceding its suffix.
func (t *Tree) BWT() (string, error) {
	if t.reg.Count() == 0 {
		return "", ErrEmptyTree
	}
	if t.reg.Count() != 1 {
		return "", errors.Wrapf(ErrMultipleStrings, "tree indexes %d strings", t.reg.Count())
	}

	n := t.reg.Len(0)
	out := make([]byte, 0, n)
	for _, leaf := range t.leaves(Root) {
		start := n - t.nodes[leaf].strDepth
		prev := start - 1
		if start == 0 {
			prev = n - 1
		}
		out = append(out, t.render(t.reg.At(0, prev)))
	}
	return string(out), nil
}

// InverseBWT rebuilds the original string, sentinel removed, from its
// transform. sentinel must occur exactly once in bwt and sorts before every
// other byte.
func InverseBWT(bwt string, sentinel byte) (string, error) {
	n := len(bwt)
	if n == 0 {
		return "", errors.New("empty transform")
	}

	key := func(i int) int {
		if bwt[i] == sentinel {
			return -1
		}
		return int(bwt[i])
	}

	seen := 0
	for i := 0; i < n; i++ {
		if bwt[i] == sentinel {
			seen++
		}
	}
	if seen != 1 {
		return "", errors.Errorf("transform holds %d sentinels, want 1", seen)
	}

	// rank[j] is the position in bwt of the j-th symbol of the sorted first
	// column.
	rank := make([]int, n)
	for i := range rank {
		rank[i] = i
	}
	sort.SliceStable(rank, func(a, b int) bool { return key(rank[a]) < key(rank[b]) })

	out := make([]byte, 0, n-1)
	row := rank[0]
	for i := 0; i < n-1; i++ {
		out = append(out, bwt[rank[row]])
		row = rank[row]
	}
	return string(out), nil
}
