// Package session runs the parse-and-preview pipeline on behalf of an
// interactive caller that may start a new load before the last one finished.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ukaji3/csvpeek-go/pkg/csvpeek"
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/models"
	"golang.org/x/sync/semaphore"
)

// ErrSuperseded is returned by a load that was overtaken by a newer one.
var ErrSuperseded = errors.New("superseded by a newer load")

// Snapshot is the outcome of one successful load.
type Snapshot struct {
	Name    string
	Result  *models.Result
	Preview string
}

// Viewer serializes loads. Each load is stamped with a generation when it
// starts; only the most recently started load may publish its snapshot.
type Viewer struct {
	opts        csvpeek.Options
	previewOpts csvpeek.PreviewOptions
	logger      *slog.Logger

	sem *semaphore.Weighted
	gen atomic.Uint64

	mu      sync.RWMutex
	current *Snapshot
}

// New creates a Viewer. A nil logger discards log output.
func New(opts csvpeek.Options, previewOpts csvpeek.PreviewOptions, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Viewer{
		opts:        opts,
		previewOpts: previewOpts,
		logger:      logger.With(slog.String("component", "viewer")),
		sem:         semaphore.NewWeighted(1),
	}
}

// Load parses data, the contents of the file called name, and renders its preview.
func (v *Viewer) Load(ctx context.Context, name string, data []byte) (*Snapshot, error) {
	return v.run(ctx, name, func() (*models.Result, error) {
		return csvpeek.ParseBytes(data, v.opts)
	})
}

// LoadFile parses the file at path and renders its preview.
func (v *Viewer) LoadFile(ctx context.Context, path string) (*Snapshot, error) {
	return v.run(ctx, path, func() (*models.Result, error) {
		return csvpeek.ParseFile(path, v.opts)
	})
}

func (v *Viewer) run(ctx context.Context, name string, parse func() (*models.Result, error)) (*Snapshot, error) {
	gen := v.gen.Add(1)
	logger := v.logger.With(slog.String("name", name), slog.Uint64("generation", gen))

	if err := v.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer v.sem.Release(1)

	if v.gen.Load() != gen {
		logger.Debug("load skipped, newer load pending")
		return nil, ErrSuperseded
	}

	logger.Debug("load started")
	result, err := parse()
	if err != nil {
		if v.gen.Load() != gen {
			logger.Debug("failed load discarded, newer load pending", slog.String("error", err.Error()))
			return nil, ErrSuperseded
		}
		v.publish(nil)
		logger.Debug("load failed", slog.String("error", err.Error()))
		return nil, err
	}
	preview := csvpeek.Preview(result.Table, v.previewOpts)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if v.gen.Load() != gen {
		logger.Debug("load discarded, newer load pending")
		return nil, ErrSuperseded
	}

	snap := &Snapshot{Name: name, Result: result, Preview: preview}
	v.publish(snap)

	logger.Info("load finished",
		slog.Int("rows", result.Table.NumRows()),
		slog.Int("columns", result.Table.NumColumns()),
		slog.Int("warnings", len(result.Warnings)),
	)
	for _, w := range result.Warnings {
		logger.Warn("row length mismatch", slog.String("detail", w.String()))
	}
	return snap, nil
}

func (v *Viewer) publish(s *Snapshot) {
	v.mu.Lock()
	v.current = s
	v.mu.Unlock()
}

// Current returns the last published snapshot, or nil.
func (v *Viewer) Current() *Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Render re-renders the current table with a different row limit.
// It reports false when nothing is loaded.
func (v *Viewer) Render(limit int) (string, bool) {
	snap := v.Current()
	if snap == nil {
		return "", false
	}
	opts := v.previewOpts
	opts.Limit = limit
	return csvpeek.Preview(snap.Result.Table, opts), true
}
