package sfx

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gnolang/sfxtree/internal/tree"
	tt "github.com/gnolang/sfxtree/internal/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// defaultSettle groups bursts of writes to the same inputs into one rebuild.
const defaultSettle = 100 * time.Millisecond

// ReportFunc receives every rebuilt report, or the error that prevented it.
type ReportFunc func(report *tt.Report, t *tree.Tree, err error)

// Watcher rebuilds the tree whenever one of its inputs changes.
type Watcher struct {
	engine   *Engine
	paths    []string
	inputs   map[string]bool
	opts     ReportOptions
	onReport ReportFunc
	settle   time.Duration
	watcher  *fsnotify.Watcher
}

// NewWatcher watches the directories holding paths. Nothing is built until
// Run is called.
func (e *Engine) NewWatcher(paths []string, opts ReportOptions, onReport ReportFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}

	engine := *e
	engine.cache = newRecordCache()

	w := &Watcher{
		engine:   &engine,
		paths:    paths,
		inputs:   make(map[string]bool, len(paths)),
		opts:     opts,
		onReport: onReport,
		settle:   defaultSettle,
		watcher:  fw,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "resolve %s", p)
		}
		w.inputs[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "watch %s", dir)
		}
	}
	return w, nil
}

// Run reports once, then again after every settled change, until ctx is
// done. The underlying watcher is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	w.rebuild(ctx)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.engine.logger.Debug("Input changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			pending = time.After(w.settle)
		case <-pending:
			pending = nil
			if !w.engine.cache.stale(w.paths) {
				w.engine.logger.Debug("Inputs unchanged")
				continue
			}
			w.rebuild(ctx)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.engine.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.inputs[abs]
}

func (w *Watcher) rebuild(ctx context.Context) {
	report, t, err := w.engine.Analyze(ctx, w.paths, w.opts)
	if err != nil {
		w.engine.logger.Error("Rebuild failed", zap.Error(err))
	}
	w.onReport(report, t, err)
}
