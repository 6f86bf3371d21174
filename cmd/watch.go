package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gnolang/sfxtree/formatter"
	"github.com/gnolang/sfxtree/internal/tree"
	tt "github.com/gnolang/sfxtree/internal/types"
	"github.com/gnolang/sfxtree/sfx"
	"github.com/spf13/cobra"
)

func newWatchCmd(o *rootOptions) *cobra.Command {
	var fingerprints bool

	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Rebuild and report whenever an input file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := o.inputs(args)
			if err != nil {
				return err
			}
			engine, err := o.engine(cmd)
			if err != nil {
				return o.fail("Failed to initialize engine", err)
			}

			out := cmd.OutOrStdout()
			opts := sfx.ReportOptions{Fingerprints: fingerprints}
			w, err := engine.NewWatcher(paths, opts, func(report *tt.Report, _ *tree.Tree, err error) {
				if err != nil {
					fmt.Fprintf(out, "rebuild failed: %v\n", err)
					return
				}
				formatter.Metrics(out, report)
				if fingerprints {
					fmt.Fprint(out, formatter.Fingerprints(report))
				}
			})
			if err != nil {
				return o.fail("Error starting watcher", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return w.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&fingerprints, "fingerprints", false, "Also list fingerprints on every rebuild")
	return cmd
}
