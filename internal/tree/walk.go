package tree

// Walk visits the subtree of id in pre-order, children in sorted order. It
// stops early when fn returns false.
func (t *Tree) Walk(id NodeID, fn func(NodeInfo) bool) {
	for _, n := range t.preOrder(id) {
		if !fn(t.Node(n)) {
			return
		}
	}
}

// preOrder lists the subtree of id depth-first, children in sorted order.
func (t *Tree) preOrder(id NodeID) []NodeID {
	order := make([]NodeID, 0, len(t.nodes))
	stack := []NodeID{id}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		children := t.nodes[n].children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return order
}

// postOrder lists the subtree of id so that every node follows all of its
// descendants.
func (t *Tree) postOrder(id NodeID) []NodeID {
	pre := t.preOrder(id)
	for i, j := 0, len(pre)-1; i < j; i, j = i+1, j-1 {
		pre[i], pre[j] = pre[j], pre[i]
	}
	return pre
}

// leaves lists the leaves below id in sorted order.
func (t *Tree) leaves(id NodeID) []NodeID {
	var out []NodeID
	for _, n := range t.preOrder(id) {
		if t.isLeaf(n) {
			out = append(out, n)
		}
	}
	return out
}
