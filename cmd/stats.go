package cmd

import (
	"fmt"

	"github.com/gnolang/sfxtree/formatter"
	"github.com/gnolang/sfxtree/sfx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newStatsCmd(o *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		outPath    string
		verify     bool
		patterns   []string
	)

	cmd := &cobra.Command{
		Use:   "stats [paths...]",
		Short: "Print node counts, internal depths and the longest repeat",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, t, err := o.analyze(cmd, args, sfx.ReportOptions{Patterns: patterns})
			if err != nil {
				return err
			}
			if verify {
				if err := t.Validate(); err != nil {
					return o.fail("Suffix tree failed validation", err)
				}
				o.logger.Info("Suffix tree is valid", zap.Int("nodes", t.NodeCount()))
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report, outPath)
			}
			out := cmd.OutOrStdout()
			formatter.Metrics(out, report)
			if len(report.Occurrences) > 0 {
				fmt.Fprintln(out)
				formatter.Occurrences(out, report)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report in JSON format")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	cmd.Flags().BoolVar(&verify, "verify", false, "Check every tree invariant after building")
	cmd.Flags().StringSliceVarP(&patterns, "pattern", "p", nil, "Report which inputs contain this pattern (repeatable)")
	return cmd
}
