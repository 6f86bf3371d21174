package cmd

import (
	"fmt"

	"github.com/gnolang/sfxtree/formatter"
	"github.com/gnolang/sfxtree/sfx"
	"github.com/spf13/cobra"
)

func newFingerprintCmd(o *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "fingerprint [paths...]",
		Short: "List the shortest substrings unique to each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, _, err := o.analyze(cmd, args, sfx.ReportOptions{Fingerprints: true})
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report.Fingerprints, outPath)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Fingerprints(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output fingerprints in JSON format")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	return cmd
}
