package tree

import (
	"strings"
)

// Colorize recomputes the color of every internal node bottom-up: the common
// color of its children, or Mixed when they disagree.
func (t *Tree) Colorize() {
	for _, id := range t.postOrder(Root) {
		children := t.nodes[id].children
		if len(children) == 0 {
			continue
		}
		color := t.nodes[children[0]].color
		for _, c := range children[1:] {
			if t.nodes[c].color != color {
				color = Mixed
				break
			}
		}
		t.nodes[id].color = color
	}
	t.colored = true
}

type fingerprintSite struct {
	node  NodeID
	child NodeID
}

// Fingerprints returns, for every indexed string, its shortest substrings that
// occur in no other indexed string. A fingerprint is the path label of a
// deepest Mixed node extended by the first symbol of one of its children
// whose leaves all belong to that string. Children starting with a
// terminator are skipped, so fingerprints never contain the sentinel.
func (t *Tree) Fingerprints() map[int][]string {
	if !t.colored {
		t.Colorize()
	}

	count := t.reg.Count()
	best := make([]int, count)
	sites := make([][]fingerprintSite, count)
	for i := range best {
		best[i] = -1
	}

	for _, m := range t.preOrder(Root) {
		if t.nodes[m].color != Mixed {
			continue
		}
		depth := t.nodes[m].strDepth
		for _, c := range t.nodes[m].children {
			k := t.nodes[c].color
			if k == Mixed || t.firstSymbol(c).IsTerminator() {
				continue
			}
			switch {
			case depth > best[k]:
				best[k] = depth
				sites[k] = []fingerprintSite{{m, c}}
			case depth == best[k]:
				sites[k] = append(sites[k], fingerprintSite{m, c})
			}
		}
	}

	out := make(map[int][]string, count)
	for k := 0; k < count; k++ {
		prints := make([]string, 0, len(sites[k]))
		for _, s := range sites[k] {
			var sb strings.Builder
			sb.WriteString(t.Reconstruct(s.node))
			sb.WriteByte(t.render(t.firstSymbol(s.child)))
			prints = append(prints, sb.String())
		}
		out[k] = prints
	}
	return out
}

// Metrics summarizes a depth-first pass over the tree.
type Metrics struct {
	Nodes    int
	Leaves   int
	Internal int // root included
	// InternalDepthSum is the sum of string depths over internal nodes.
	InternalDepthSum     int
	AverageInternalDepth float64
	Deepest              NodeID
	DeepestDepth         int
}

// Metrics walks the tree once and collects node counts and internal string
// depths. Deepest is the first internal node in sorted order with the maximum
// string depth.
func (t *Tree) Metrics() Metrics {
	m := Metrics{Deepest: Root}
	for _, id := range t.preOrder(Root) {
		m.Nodes++
		if t.isLeaf(id) {
			m.Leaves++
			continue
		}
		m.Internal++
		sd := t.nodes[id].strDepth
		m.InternalDepthSum += sd
		if sd > m.DeepestDepth {
			m.Deepest = id
			m.DeepestDepth = sd
		}
	}
	if m.Internal > 0 {
		m.AverageInternalDepth = float64(m.InternalDepthSum) / float64(m.Internal)
	}
	return m
}

// LongestRepeat returns the longest substring occurring at least twice across
// the indexed strings, with its length.
func (t *Tree) LongestRepeat() (string, int) {
	m := t.Metrics()
	return t.Reconstruct(m.Deepest), m.DeepestDepth
}

// AverageInternalDepth returns the mean string depth of internal nodes.
func (t *Tree) AverageInternalDepth() float64 {
	return t.Metrics().AverageInternalDepth
}
