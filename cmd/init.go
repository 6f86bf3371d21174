package cmd

import (
	"fmt"

	"github.com/gnolang/sfxtree/sfx"
	"github.com/spf13/cobra"
)

// sfxtree init
func newInitCmd(o *rootOptions) *cobra.Command {
	var (
		alphabetDef  string
		construction string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := o.cfgFile
			if path == "" {
				path = sfx.DefaultConfigPath
			}

			config := sfx.DefaultConfig()
			if alphabetDef != "" {
				config.Alphabet = alphabetDef
			}
			if construction != "" {
				config.Construction = construction
			}
			if err := config.Validate(); err != nil {
				return o.fail("Invalid configuration", err)
			}
			if err := sfx.WriteConfig(path, config); err != nil {
				return o.fail("Error initializing config file", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&alphabetDef, "alphabet", "", "Alphabet preset (dna, rna, protein, ascii) or literal symbols")
	cmd.Flags().StringVar(&construction, "construction", "", "Insertion strategy: linked or naive")
	return cmd
}
