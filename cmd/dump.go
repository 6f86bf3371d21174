package cmd

import (
	"fmt"

	"github.com/gnolang/sfxtree/formatter"
	"github.com/gnolang/sfxtree/internal/tree"
	"github.com/gnolang/sfxtree/sfx"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDumpCmd(o *rootOptions) *cobra.Command {
	var (
		node     int
		depth    int
		children bool
		path     bool
	)

	cmd := &cobra.Command{
		Use:   "dump [paths...]",
		Short: "Draw the suffix tree, or list the children of one node",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, t, err := o.analyze(cmd, args, sfx.ReportOptions{})
			if err != nil {
				return err
			}
			if node < 0 || node >= t.NodeCount() {
				return o.fail("Invalid node", errors.Errorf("node %d out of range [0, %d)", node, t.NodeCount()))
			}

			id := tree.NodeID(node)
			out := cmd.OutOrStdout()
			if path {
				fmt.Fprintln(out, t.ReconstructSeparated(id))
				return nil
			}
			if children {
				fmt.Fprint(out, formatter.Children(t, id))
				return nil
			}
			t.Colorize()
			fmt.Fprint(out, formatter.DumpTree(t, id, depth))
			return nil
		},
	}

	cmd.Flags().IntVar(&node, "node", int(tree.Root), "Node to start from")
	cmd.Flags().IntVar(&depth, "depth", 0, "Draw at most this many levels (0 for all)")
	cmd.Flags().BoolVar(&children, "children", false, "Only list the children of --node")
	cmd.Flags().BoolVar(&path, "path", false, "Only print the path label of --node, edges separated by '|'")
	return cmd
}
