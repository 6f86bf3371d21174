package cmd

import (
	"context"
	"time"

	"github.com/gnolang/sfxtree/internal/fasta"
	"github.com/gnolang/sfxtree/internal/tree"
	tt "github.com/gnolang/sfxtree/internal/types"
	"github.com/gnolang/sfxtree/sfx"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Minute

// rootOptions holds the persistent flags and what PersistentPreRunE derives
// from them.
type rootOptions struct {
	cfgFile  string
	logLevel string
	logFile  string
	listFile string
	timeout  time.Duration
	progress bool

	config sfx.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "sfxtree",
		Short:         "sfxtree - generalized suffix trees over sequence files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = o.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", sfx.DefaultConfigPath, "Path to the configuration file")
	flags.StringVar(&o.logLevel, "log-level", "", "Log level (overrides the configuration file)")
	flags.StringVar(&o.logFile, "log-file", "", "Write logs to a rotated file (overrides the configuration file)")
	flags.StringVar(&o.listFile, "list", "", "File listing one FASTA path per line")
	flags.DurationVar(&o.timeout, "timeout", defaultTimeout, "Abort after this long")
	flags.BoolVar(&o.progress, "progress", false, "Draw a progress bar while indexing")

	rootCmd.AddCommand(newInitCmd(o))
	rootCmd.AddCommand(newStatsCmd(o))
	rootCmd.AddCommand(newFingerprintCmd(o))
	rootCmd.AddCommand(newBWTCmd(o))
	rootCmd.AddCommand(newDumpCmd(o))
	rootCmd.AddCommand(newWatchCmd(o))
	return rootCmd
}

// Execute runs the command line.
func Execute() error {
	return newRootCmd().Execute()
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	o.config = sfx.DefaultConfig()
	if cmd.Name() != "init" {
		config, err := sfx.LoadConfig(o.cfgFile)
		if err != nil {
			return err
		}
		o.config = config
	}

	level := o.config.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	file := o.config.Log.File
	if o.logFile != "" {
		file = o.logFile
	}
	logger, err := newLogger(level, file, o.config.Log)
	if err != nil {
		return err
	}
	o.logger = logger
	return nil
}

func (o *rootOptions) engine(cmd *cobra.Command) (*sfx.Engine, error) {
	var opts []sfx.EngineOption
	if o.progress {
		opts = append(opts, sfx.WithProgress(cmd.ErrOrStderr()))
	}
	return sfx.New(o.config, o.logger, opts...)
}

// inputs joins the positional paths with those listed in --list.
func (o *rootOptions) inputs(args []string) ([]string, error) {
	paths := append([]string(nil), args...)
	if o.listFile != "" {
		listed, err := fasta.ReadList(o.listFile)
		if err != nil {
			return nil, err
		}
		paths = append(paths, listed...)
	}
	if len(paths) == 0 {
		return nil, errors.New("please provide FASTA paths or --list")
	}
	return paths, nil
}

func (o *rootOptions) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), o.timeout)
}

// analyze runs the engine over the inputs named by args.
func (o *rootOptions) analyze(cmd *cobra.Command, args []string, opts sfx.ReportOptions) (*tt.Report, *tree.Tree, error) {
	paths, err := o.inputs(args)
	if err != nil {
		return nil, nil, err
	}
	engine, err := o.engine(cmd)
	if err != nil {
		return nil, nil, o.fail("Failed to initialize engine", err)
	}

	ctx, cancel := o.context()
	defer cancel()

	report, t, err := engine.Analyze(ctx, paths, opts)
	if err != nil {
		return nil, nil, o.fail("Error building suffix tree", err)
	}
	return report, t, nil
}

// fail logs err before handing it back to cobra.
func (o *rootOptions) fail(msg string, err error) error {
	o.logger.Error(msg, zap.Error(err))
	return err
}
