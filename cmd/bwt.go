package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gnolang/sfxtree/internal/tree"
	"github.com/gnolang/sfxtree/sfx"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBWTCmd(o *rootOptions) *cobra.Command {
	var (
		outPath string
		verify  bool
	)

	cmd := &cobra.Command{
		Use:   "bwt [path]",
		Short: "Print the Burrows-Wheeler transform of a single sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, t, err := o.analyze(cmd, args, sfx.ReportOptions{BWT: true})
			if err != nil {
				return err
			}

			if verify {
				text, err := tree.InverseBWT(report.BWT, t.Sentinel())
				if err != nil {
					return o.fail("Error inverting transform", err)
				}
				if text != t.Text(0) {
					return o.fail("Transform does not invert", errors.Errorf("got %q", text))
				}
				o.logger.Info("Transform inverts to the input", zap.Int("length", len(text)))
			}

			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), report.BWT)
				return nil
			}
			if err := writeSymbols(outPath, report.BWT); err != nil {
				return o.fail("Error writing transform", err)
			}
			o.logger.Info("Wrote transform", zap.String("path", outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write one symbol per line to this file")
	cmd.Flags().BoolVar(&verify, "verify", false, "Invert the transform and compare it with the input")
	return cmd
}

func writeSymbols(path, bwt string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	w := bufio.NewWriter(f)
	for i := 0; i < len(bwt); i++ {
		w.WriteByte(bwt[i])
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	return nil
}
