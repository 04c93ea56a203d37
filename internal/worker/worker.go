// Package worker runs the per-file extraction pipeline and fans a
// batch of replay files out over a bounded pool of goroutines. Each
// file is independent, so the pool needs no shared state beyond the
// storage backend, which is safe for concurrent use.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/mtreplays/extractor/internal/container"
	"github.com/mtreplays/extractor/internal/influx"
	"github.com/mtreplays/extractor/internal/model"
	"github.com/mtreplays/extractor/internal/payload"
	"github.com/mtreplays/extractor/internal/stats"
	"github.com/mtreplays/extractor/internal/storage"
)

// Dependencies holds all dependencies for the worker manager.
type Dependencies struct {
	Resolver   *payload.Resolver
	Normalizer *stats.Normalizer
	Backend    storage.Backend
	Logger     *slog.Logger

	// Influx is optional; nil disables metrics.
	Influx *influx.Manager
}

// Manager runs the extraction pipeline.
type Manager struct {
	deps Dependencies
}

// NewManager creates a new worker manager.
func NewManager(deps Dependencies) *Manager {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Manager{deps: deps}
}

// Result is the outcome of processing one file.
type Result struct {
	Path   string
	Record stats.Record
	Err    error
}

// ProcessFile runs the full pipeline for one replay file: split the
// container, resolve the payload, normalize the facts, persist. A
// failure anywhere aborts the file without touching storage.
func (m *Manager) ProcessFile(ctx context.Context, path string) (stats.Record, error) {
	start := time.Now()
	record, err := m.processFile(ctx, path)
	m.reportProcessing(ctx, path, time.Since(start), record, err)
	return record, err
}

func (m *Manager) processFile(ctx context.Context, path string) (stats.Record, error) {
	if err := ctx.Err(); err != nil {
		return stats.Record{}, err
	}

	cont, err := container.ParseFile(path)
	if err != nil {
		return stats.Record{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	pair := cont.Pair()
	cache, err := m.deps.Resolver.Resolve([]byte(pair))
	if err != nil {
		return stats.Record{}, fmt.Errorf("resolving %s: %w", path, err)
	}

	record, err := m.deps.Normalizer.ExtractFields(cache)
	if err != nil {
		return stats.Record{}, fmt.Errorf("normalizing %s: %w", path, err)
	}

	saved := &model.SavedReplay{
		FileName: filepath.Base(path),
		Payload:  []byte(pair),
		Record:   record,
	}
	if err := m.deps.Backend.SaveReplay(saved); err != nil {
		return stats.Record{}, fmt.Errorf("saving %s: %w", path, err)
	}

	m.deps.Logger.Info("processed replay",
		"file", saved.FileName,
		"vehicle", record.VehicleTag,
		"map", record.MapName,
		"outcome", record.Outcome.Status,
	)
	return record, nil
}

// ProcessBatch processes files concurrently with at most workers
// goroutines. Results come back in input order; a per-file failure is
// reported in its Result and does not stop the batch.
func (m *Manager) ProcessBatch(ctx context.Context, paths []string, workers int) []Result {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(paths))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			record, err := m.ProcessFile(ctx, path)
			results[i] = Result{Path: path, Record: record, Err: err}
		}(i, path)
	}

	wg.Wait()
	return results
}

func (m *Manager) reportProcessing(ctx context.Context, path string, d time.Duration, record stats.Record, err error) {
	if m.deps.Influx == nil {
		return
	}
	point := influx.ProcessingPoint(filepath.Base(path), d, err)
	if werr := m.deps.Influx.WritePoint(ctx, influx.BucketProcessing, point); werr != nil {
		m.deps.Logger.Warn("failed to report processing metric", "error", werr)
	}
	if err == nil {
		if werr := m.deps.Influx.WritePoint(ctx, influx.BucketBattles, influx.BattlePoint(record)); werr != nil {
			m.deps.Logger.Warn("failed to report battle metric", "error", werr)
		}
	}
}
