// Package sfx loads named sequences, builds a generalized suffix tree over
// them and assembles reports from its queries.
package sfx

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/gnolang/sfxtree/internal/alphabet"
	"github.com/gnolang/sfxtree/internal/fasta"
	"github.com/gnolang/sfxtree/internal/tree"
	tt "github.com/gnolang/sfxtree/internal/types"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine builds trees according to a Config.
type Engine struct {
	config   Config
	alphabet *alphabet.Alphabet
	sentinel byte
	mode     tree.Mode
	logger   *zap.Logger
	progress io.Writer
	cache    *recordCache
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithProgress draws a progress bar on w while strings are inserted.
func WithProgress(w io.Writer) EngineOption {
	return func(e *Engine) { e.progress = w }
}

// New resolves config into an engine. A nil logger discards output.
func New(config Config, logger *zap.Logger, opts ...EngineOption) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	mode, err := config.mode()
	if err != nil {
		return nil, err
	}
	sentinel, err := config.sentinel()
	if err != nil {
		return nil, err
	}
	a, err := alphabet.Parse(config.Alphabet, sentinel)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		config:   config,
		alphabet: a,
		sentinel: sentinel,
		mode:     mode,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the configuration the engine was built from.
func (e *Engine) Config() Config { return e.config }

// Load reads the records of every path concurrently and returns them in path
// order.
func (e *Engine) Load(ctx context.Context, paths []string) ([]fasta.Record, error) {
	if len(paths) == 0 {
		return nil, errors.New("no input paths")
	}

	results := make([][]fasta.Record, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, cached, err := e.read(path)
			if err != nil {
				e.logger.Error("Error reading input", zap.String("path", path), zap.Error(err))
				return err
			}
			e.logger.Debug("Read input",
				zap.String("path", path),
				zap.Int("records", len(records)),
				zap.Bool("cached", cached))
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []fasta.Record
	for _, r := range results {
		records = append(records, r...)
	}
	if len(records) == 0 {
		return nil, errors.New("inputs contain no records")
	}
	return records, nil
}

func (e *Engine) read(path string) ([]fasta.Record, bool, error) {
	if e.cache == nil {
		records, err := fasta.ReadFile(path)
		return records, false, err
	}
	return e.cache.load(path)
}

// Build validates every record against the alphabet, then inserts them in
// order into one tree. The context is checked between records only.
func (e *Engine) Build(ctx context.Context, records []fasta.Record) (*tree.Tree, error) {
	for _, r := range records {
		if err := e.alphabet.Validate(r.Sequence); err != nil {
			return nil, errors.Wrapf(err, "record %q", r.Name)
		}
	}

	var bar *progressbar.ProgressBar
	if e.progress != nil {
		bar = progressbar.NewOptions(len(records),
			progressbar.OptionSetWriter(e.progress),
			progressbar.OptionSetDescription("indexing"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	t := tree.New(
		tree.WithAlphabet(e.alphabet),
		tree.WithSentinel(e.sentinel),
		tree.WithMode(e.mode),
	)
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		id, err := t.AddString(r.Sequence)
		if err != nil {
			return nil, errors.Wrapf(err, "record %q", r.Name)
		}
		e.logger.Debug("Indexed record",
			zap.String("name", r.Name),
			zap.Int("id", id),
			zap.Int("length", len(r.Sequence)),
			zap.Int("nodes", t.NodeCount()),
			zap.Duration("elapsed", time.Since(start)))
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	e.logger.Info("Built suffix tree",
		zap.Int("records", len(records)),
		zap.Int("nodes", t.NodeCount()),
		zap.Stringer("construction", e.mode))
	return t, nil
}

// ReportOptions selects the optional sections of a report.
type ReportOptions struct {
	Fingerprints bool
	BWT          bool

	// Patterns are looked up in the tree and reported with their sources.
	Patterns []string
}

// Report runs the queries selected by opts over t.
func (e *Engine) Report(t *tree.Tree, records []fasta.Record, opts ReportOptions) (*tt.Report, error) {
	if t.Strings() != len(records) {
		return nil, errors.Errorf("tree indexes %d strings for %d records", t.Strings(), len(records))
	}

	m := t.Metrics()
	repeat, repeatLen := t.LongestRepeat()
	report := &tt.Report{
		Construction: t.Mode().String(),
		Alphabet:     t.Alphabet().Name(),
		Inputs:       make([]tt.Input, len(records)),
		Metrics: tt.Metrics{
			Nodes:                m.Nodes,
			Leaves:               m.Leaves,
			Internal:             m.Internal,
			AverageInternalDepth: m.AverageInternalDepth,
			LongestRepeat:        repeat,
			LongestRepeatLength:  repeatLen,
		},
	}
	for i, r := range records {
		report.Inputs[i] = tt.Input{ID: i, Name: r.Name, Length: len(r.Sequence)}
	}

	if opts.Fingerprints {
		prints := t.Fingerprints()
		for i := range records {
			report.Fingerprints = append(report.Fingerprints, tt.Fingerprints{
				Input:  report.Inputs[i],
				Prints: prints[i],
			})
		}
	}

	for _, p := range opts.Patterns {
		report.Occurrences = append(report.Occurrences, tt.Occurrence{
			Pattern: p,
			Inputs:  t.Sources(p),
		})
	}

	if opts.BWT {
		bwt, err := t.BWT()
		if err != nil {
			return nil, err
		}
		report.BWT = bwt
	}
	return report, nil
}

// Analyze loads paths, builds the tree and reports on it.
func (e *Engine) Analyze(ctx context.Context, paths []string, opts ReportOptions) (*tt.Report, *tree.Tree, error) {
	records, err := e.Load(ctx, paths)
	if err != nil {
		return nil, nil, err
	}
	t, err := e.Build(ctx, records)
	if err != nil {
		return nil, nil, err
	}
	report, err := e.Report(t, records, opts)
	if err != nil {
		return nil, nil, err
	}
	return report, t, nil
}
