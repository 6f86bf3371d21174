package tree

import (
	"strings"
)

// NodeInfo is a read-only view of one node.
type NodeInfo struct {
	ID          NodeID
	Parent      NodeID
	Depth       int
	StringDepth int
	Label       string
	Source      int
	Color       Color
	Leaf        bool
	// SuffixLink is -1 while unknown.
	SuffixLink NodeID
}

// Node returns a view of id.
func (t *Tree) Node(id NodeID) NodeInfo {
	t.fixDepths()
	n := t.nodes[id]
	return NodeInfo{
		ID:          id,
		Parent:      n.parent,
		Depth:       n.depth,
		StringDepth: n.strDepth,
		Label:       t.Label(id),
		Source:      n.source,
		Color:       n.color,
		Leaf:        t.isLeaf(id),
		SuffixLink:  n.link,
	}
}

// Children lists the children of id in sorted order.
func (t *Tree) Children(id NodeID) []NodeInfo {
	children := t.nodes[id].children
	out := make([]NodeInfo, 0, len(children))
	for _, c := range children {
		out = append(out, t.Node(c))
	}
	return out
}

// Label returns the edge label of id. Terminators print as the sentinel.
func (t *Tree) Label(id NodeID) string {
	var sb strings.Builder
	t.writeLabel(&sb, id)
	return sb.String()
}

func (t *Tree) writeLabel(sb *strings.Builder, id NodeID) {
	n := &t.nodes[id]
	for pos := n.start; pos < n.end; pos++ {
		sb.WriteByte(t.render(t.reg.At(n.source, pos)))
	}
}

func (t *Tree) render(s Symbol) byte {
	if s.IsTerminator() {
		return t.sentinel
	}
	return byte(s)
}

// path returns the ancestors of id from the first child of the root down to
// id itself.
func (t *Tree) path(id NodeID) []NodeID {
	var ids []NodeID
	for n := id; n != Root; n = t.nodes[n].parent {
		ids = append(ids, n)
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}

// Reconstruct returns the path label of id, the concatenation of edge labels
// from the root.
func (t *Tree) Reconstruct(id NodeID) string {
	var sb strings.Builder
	sb.Grow(t.nodes[id].strDepth)
	for _, n := range t.path(id) {
		t.writeLabel(&sb, n)
	}
	return sb.String()
}

// ReconstructSeparated is Reconstruct with edge boundaries marked by '|'.
func (t *Tree) ReconstructSeparated(id NodeID) string {
	var sb strings.Builder
	for _, n := range t.path(id) {
		sb.WriteByte('|')
		t.writeLabel(&sb, n)
	}
	return sb.String()
}

// pathSymbols is Reconstruct without rendering, so terminators of different
// strings stay distinct.
func (t *Tree) pathSymbols(id NodeID) []Symbol {
	out := make([]Symbol, 0, t.nodes[id].strDepth)
	for _, n := range t.path(id) {
		nd := &t.nodes[n]
		for pos := nd.start; pos < nd.end; pos++ {
			out = append(out, t.reg.At(nd.source, pos))
		}
	}
	return out
}
