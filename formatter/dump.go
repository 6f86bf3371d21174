package formatter

import (
	"fmt"
	"strings"

	"github.com/gnolang/sfxtree/internal/tree"
	"github.com/xlab/treeprint"
)

// DumpTree draws the subtree of id. Nodes deeper than maxDepth edges below id
// are left out; zero means no limit.
func DumpTree(t *tree.Tree, id tree.NodeID, maxDepth int) string {
	top := t.Node(id)
	root := treeprint.New()
	root.SetValue(nodeText(top))

	branches := map[tree.NodeID]treeprint.Tree{id: root}
	t.Walk(id, func(n tree.NodeInfo) bool {
		if n.ID == id {
			return true
		}
		if maxDepth > 0 && n.Depth-top.Depth > maxDepth {
			return true
		}
		parent, ok := branches[n.Parent]
		if !ok {
			return true
		}
		if n.Leaf {
			parent.AddNode(nodeText(n))
			return true
		}
		branches[n.ID] = parent.AddBranch(nodeText(n))
		return true
	})
	return root.String()
}

// Children lists the children of id, one line each.
func Children(t *tree.Tree, id tree.NodeID) string {
	children := t.Children(id)
	if len(children) == 0 {
		return emptyStyle.Sprint("no children") + "\n"
	}

	var builder strings.Builder
	for _, c := range children {
		builder.WriteString(indexStyle.Sprintf("id %d", c.ID))
		fmt.Fprintf(&builder, " depth %d string-depth %d edge %q", c.Depth, c.StringDepth, c.Label)
		if c.Leaf {
			fmt.Fprintf(&builder, " leaf of %d", c.Source)
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

func nodeText(n tree.NodeInfo) string {
	label := n.Label
	if n.ID == tree.Root {
		label = "root"
	}
	text := fmt.Sprintf("%s [%d sd=%d]", label, n.ID, n.StringDepth)
	switch {
	case n.Leaf:
		return text + " " + printStyle.Sprintf("<%d>", n.Source)
	case n.Color == tree.Mixed:
		return text + " " + mixedStyle.Sprint("mixed")
	default:
		return text
	}
}
