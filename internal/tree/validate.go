package tree

// Validate checks the structural invariants of the whole tree and returns the
// first violation found as an *InvariantError.
func (t *Tree) Validate() error {
	t.fixDepths()
	root := t.nodes[Root]
	if root.parent != Root || root.link != Root {
		return violation(Root, "root must be its own parent and suffix link")
	}

	seen := make([]bool, len(t.nodes))
	leaves := 0
	for _, id := range t.preOrder(Root) {
		if seen[id] {
			return violation(id, "reachable twice")
		}
		seen[id] = true

		n := &t.nodes[id]
		if id != Root {
			if err := t.checkEdge(id); err != nil {
				return err
			}
		}
		if t.isLeaf(id) {
			leaves++
			if n.end != t.reg.Len(n.source) {
				return violation(id, "leaf label does not reach the end of string %d", n.source)
			}
		}

		var last Symbol
		for i, c := range n.children {
			if t.nodes[c].parent != id {
				return violation(c, "parent is %d, listed under %d", t.nodes[c].parent, id)
			}
			s := t.firstSymbol(c)
			if i > 0 && s <= last {
				return violation(id, "children not strictly sorted at %d", i)
			}
			last = s
		}

		if n.link != noLink && id != Root {
			if err := t.checkLink(id); err != nil {
				return err
			}
		}
	}

	for id, ok := range seen {
		if !ok {
			return violation(NodeID(id), "unreachable from root")
		}
	}
	if want := t.reg.Suffixes(); leaves != want {
		return violation(Root, "%d leaves for %d suffixes", leaves, want)
	}
	return nil
}

func (t *Tree) checkEdge(id NodeID) error {
	n := &t.nodes[id]
	p := &t.nodes[n.parent]
	switch {
	case n.end <= n.start:
		return violation(id, "empty edge label")
	case n.depth != p.depth+1:
		return violation(id, "depth %d under parent depth %d", n.depth, p.depth)
	case n.strDepth != p.strDepth+n.end-n.start:
		return violation(id, "string depth %d under parent %d with label length %d",
			n.strDepth, p.strDepth, n.end-n.start)
	}
	return nil
}

// checkLink verifies that the path label of link(id) is the path label of id
// without its first symbol.
func (t *Tree) checkLink(id NodeID) error {
	from := t.pathSymbols(id)
	to := t.pathSymbols(t.nodes[id].link)
	if len(to) != len(from)-1 {
		return violation(id, "suffix link to %d has string depth %d, want %d",
			t.nodes[id].link, len(to), len(from)-1)
	}
	for i := range to {
		if to[i] != from[i+1] {
			return violation(id, "suffix link to %d diverges at %d", t.nodes[id].link, i)
		}
	}
	return nil
}
