package tree

import "sort"

// FindPath inserts the suffix of string sid whose next unmatched symbol is at
// offset, searching from start, and returns the leaf created for it.
func (t *Tree) FindPath(start NodeID, sid, offset int) NodeID {
	cur := start
	end := t.reg.Len(sid)
	for {
		if offset >= end {
			panic(violation(cur, "suffix of string %d exhausted before reaching a leaf", sid))
		}

		idx, ok := t.findChild(cur, t.reg.At(sid, offset))
		if !ok {
			return t.addLeaf(cur, sid, offset)
		}

		child := t.nodes[cur].children[idx]
		k := t.matchLength(child, sid, offset)
		if k == t.labelLen(child) {
			cur = child
			offset += k
			continue
		}

		mid := t.split(cur, idx, k)
		return t.addLeaf(mid, sid, offset+k)
	}
}

// NodeHops walks down from start along sid[from:to] and returns the node whose
// path ends exactly there, materializing it by an edge split when the walk
// stops inside an edge. Only the first symbol of each edge is compared: the
// path is known to exist.
func (t *Tree) NodeHops(start NodeID, sid, from, to int) NodeID {
	cur := start
	for from < to {
		idx, ok := t.findChild(cur, t.reg.At(sid, from))
		if !ok {
			panic(violation(cur, "no edge for symbol at %d of string %d", from, sid))
		}

		child := t.nodes[cur].children[idx]
		l := t.labelLen(child)
		if rem := to - from; l > rem {
			return t.split(cur, idx, rem)
		}
		cur = child
		from += l
	}
	return cur
}

// SuffixLinkInsert inserts the suffix of sid starting at offset, given the
// leaf created for the suffix starting at offset-1.
func (t *Tree) SuffixLinkInsert(prevLeaf NodeID, sid, offset int) NodeID {
	u := t.nodes[prevLeaf].parent

	// the link of u is known: jump over everything already matched.
	if v := t.nodes[u].link; v != noLink {
		return t.FindPath(v, sid, offset+t.nodes[v].strDepth)
	}

	up := t.nodes[u].parent
	vp := t.nodes[up].link
	if vp == noLink {
		panic(violation(up, "missing suffix link on parent of node %d", u))
	}

	beta := t.labelLen(u)
	var v NodeID
	if up == Root {
		// the first symbol of the label is the one the link drops.
		v = t.NodeHops(Root, sid, offset, offset+beta-1)
	} else {
		from := offset + t.nodes[vp].strDepth
		v = t.NodeHops(vp, sid, from, from+beta)
	}
	t.setLink(u, v)

	// resumes at the start of prevLeaf's label.
	return t.FindPath(v, sid, offset+t.nodes[v].strDepth)
}

func (t *Tree) setLink(u, v NodeID) {
	if t.nodes[u].link != noLink {
		panic(violation(u, "suffix link already set to %d", t.nodes[u].link))
	}
	if t.nodes[v].strDepth != t.nodes[u].strDepth-1 {
		panic(violation(u, "suffix link target %d has string depth %d, want %d",
			v, t.nodes[v].strDepth, t.nodes[u].strDepth-1))
	}
	t.nodes[u].link = v
}

// findChild binary searches the children of id for the one whose label starts
// with s.
func (t *Tree) findChild(id NodeID, s Symbol) (int, bool) {
	children := t.nodes[id].children
	i := sort.Search(len(children), func(i int) bool {
		return t.firstSymbol(children[i]) >= s
	})
	return i, i < len(children) && t.firstSymbol(children[i]) == s
}

// insertChild splices child into the sorted children of parent.
func (t *Tree) insertChild(parent, child NodeID) {
	idx, ok := t.findChild(parent, t.firstSymbol(child))
	if ok {
		panic(violation(parent, "duplicate first symbol for child %d", child))
	}
	children := append(t.nodes[parent].children, 0)
	copy(children[idx+1:], children[idx:])
	children[idx] = child
	t.nodes[parent].children = children
}

// matchLength returns how many symbols of the label of child agree with sid
// starting at offset.
func (t *Tree) matchLength(child NodeID, sid, offset int) int {
	c := t.nodes[child]
	limit := c.end - c.start
	if rem := t.reg.Len(sid) - offset; rem < limit {
		limit = rem
	}
	k := 0
	for k < limit && t.reg.At(c.source, c.start+k) == t.reg.At(sid, offset+k) {
		k++
	}
	return k
}

func (t *Tree) addLeaf(parent NodeID, sid, offset int) NodeID {
	end := t.reg.Len(sid)
	p := t.nodes[parent]
	leaf := t.newNode(node{
		parent:   parent,
		link:     noLink,
		source:   sid,
		start:    offset,
		end:      end,
		depth:    p.depth + 1,
		strDepth: p.strDepth + end - offset,
		color:    Color(sid),
	})
	t.insertChild(parent, leaf)
	return leaf
}

// split cuts the edge to the idx-th child of parent after k symbols and
// returns the new internal node. The new node keeps the child's slot since
// both labels start with the same symbol.
func (t *Tree) split(parent NodeID, idx, k int) NodeID {
	child := t.nodes[parent].children[idx]
	c := t.nodes[child]
	if k <= 0 || k >= c.end-c.start {
		panic(violation(child, "split at %d outside label of length %d", k, c.end-c.start))
	}

	p := t.nodes[parent]
	mid := t.newNode(node{
		parent:   parent,
		link:     noLink,
		children: []NodeID{child},
		source:   c.source,
		start:    c.start,
		end:      c.start + k,
		depth:    p.depth + 1,
		strDepth: p.strDepth + k,
		color:    c.color,
	})

	t.nodes[child].start += k
	t.nodes[child].parent = mid
	t.nodes[parent].children[idx] = mid
	// the subtree of child is now one level deeper; see fixDepths.
	t.depthsStale = true
	return mid
}

// fixDepths recomputes node depths top-down once splits have left them
// stale. Splits only mark the tree, so each stays O(1).
func (t *Tree) fixDepths() {
	if !t.depthsStale {
		return
	}
	for _, id := range t.preOrder(Root) {
		if id != Root {
			t.nodes[id].depth = t.nodes[t.nodes[id].parent].depth + 1
		}
	}
	t.depthsStale = false
}
