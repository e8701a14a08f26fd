// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docscout/core"
	"github.com/poiesic/docscout/extract"
	"github.com/poiesic/docscout/match"
	"github.com/poiesic/docscout/results"
	"github.com/poiesic/docscout/source"
)

const (
	// DefaultBatchSize is the number of files processed together before
	// an inter-batch yield.
	DefaultBatchSize = 50

	// DefaultPause is the cooperative pause between batches, letting the
	// host drain pending work.
	DefaultPause = 100 * time.Millisecond
)

// Scheduler drives a scan run over a file set in fixed-size batches.
// Within one batch every file is submitted to the worker pool at once;
// the batch settles before its records are merged into the result store
// as a single append. Batches bound the yield cadence and cap in-flight
// resource usage; they do not promise parallel throughput for the
// CPU-bound matching itself.
type Scheduler struct {
	router     *extract.Router
	pool       *ants.Pool
	batchSize  int
	pause      time.Duration
	generation atomic.Uint64
	logger     *slog.Logger
}

// Option configures a Scheduler.
type Option func(*Scheduler) error

// WithBatchSize sets the number of files per batch.
// Default is DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(s *Scheduler) error {
		if size < 1 {
			return ErrInvalidBatchSize
		}
		s.batchSize = size
		return nil
	}
}

// WithPause sets the cooperative pause between batches.
// Default is DefaultPause; zero disables the pause.
func WithPause(pause time.Duration) Option {
	return func(s *Scheduler) error {
		if pause < 0 {
			return ErrInvalidPause
		}
		s.pause = pause
		return nil
	}
}

// WithPoolSize sets the worker pool size.
// Default is the batch size, so a full batch runs concurrently.
func WithPoolSize(size int) Option {
	return func(s *Scheduler) error {
		if size < 1 {
			size = 1
		}

		if s.pool != nil {
			s.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewScheduler creates a scheduler that extracts text through the given
// router.
func NewScheduler(router *extract.Router, opts ...Option) (*Scheduler, error) {
	if router == nil {
		return nil, ErrRouterRequired
	}

	s := &Scheduler{
		router:    router,
		batchSize: DefaultBatchSize,
		pause:     DefaultPause,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	if s.pool == nil {
		pool, err := ants.NewPool(s.batchSize)
		if err != nil {
			return nil, err
		}
		s.pool = pool
	}

	return s, nil
}

// Invalidate marks every run started before this call as superseded.
// A superseded run stops merging at its next batch boundary and returns
// ErrRunSuperseded, leaving already-merged batches in its store.
func (s *Scheduler) Invalidate() {
	s.generation.Add(1)
}

// Release releases the worker pool. The scheduler must not be used after
// calling Release.
func (s *Scheduler) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Run processes every file of the source exactly once under one search
// configuration, merging settled batches into the store and reporting
// progress through the monitor. Per-file failures are isolated: an
// extraction error, oversize rejection, matching error, or worker panic
// becomes a FileRecord with status error, and the run continues. Only a
// failure escaping per-file isolation aborts the run; the store then
// retains everything merged so far.
//
// A nil monitor is replaced with a no-op. The final statistics are
// returned; when no file matched at all the monitor's NoMatches hook
// fires instead of Finish.
func (s *Scheduler) Run(ctx context.Context, src source.Source, cfg core.SearchConfig, store *results.Store, monitor Monitor) (core.ProcessingStats, error) {
	if src == nil {
		return core.ProcessingStats{}, ErrSourceRequired
	}
	if store == nil {
		return core.ProcessingStats{}, ErrStoreRequired
	}
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateSearchConfig(cfg); err != nil {
		return core.ProcessingStats{}, err
	}

	generation := s.generation.Add(1)

	files, err := src.Files(ctx)
	if err != nil {
		return core.ProcessingStats{}, fmt.Errorf("enumerating files: %w", err)
	}

	total := len(files)
	monitor.Start(total)
	s.logger.Info("starting scan run", "files", total, "terms", len(cfg.Terms), "batchSize", s.batchSize)

	processed := 0
	for start := 0; start < total; start += s.batchSize {
		if err := ctx.Err(); err != nil {
			return s.snapshot(store, processed, total), fmt.Errorf("run aborted: %w", err)
		}
		if s.generation.Load() != generation {
			return s.snapshot(store, processed, total), ErrRunSuperseded
		}

		end := min(start+s.batchSize, total)
		batch, err := s.processBatch(ctx, files[start:end], cfg)
		if err != nil {
			return s.snapshot(store, processed, total), fmt.Errorf("batch failed: %w", err)
		}

		if s.generation.Load() != generation {
			return s.snapshot(store, processed, total), ErrRunSuperseded
		}

		store.AddBatch(batch)
		processed += len(batch)

		stats := s.snapshot(store, processed, total)
		monitor.BatchMerged(stats)

		if s.pause > 0 && end < total {
			time.Sleep(s.pause)
		}
	}

	stats := s.snapshot(store, processed, total)
	if stats.TotalMatches == 0 {
		monitor.NoMatches(stats)
	} else {
		monitor.Finish(stats)
	}
	s.logger.Info("scan run finished",
		"processed", stats.FilesProcessed,
		"matches", stats.TotalMatches,
		"failed", stats.Failed,
		"unsupported", stats.Unsupported)

	return stats, nil
}

// processBatch launches every file of the batch on the worker pool and
// waits for all of them to settle. A pool submission failure is the only
// error path; it escapes per-file isolation and aborts the run.
func (s *Scheduler) processBatch(ctx context.Context, files []source.File, cfg core.SearchConfig) ([]*core.FileRecord, error) {
	records := make([]*core.FileRecord, len(files))

	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			records[i] = s.processFile(ctx, f, cfg)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submitting %s: %w", f.Path(), err)
		}
	}
	wg.Wait()

	return records, nil
}

// processFile runs extraction and matching for one file, downgrading any
// failure, including a panic in a decoder, to a record with status error.
// The record is created when processing begins and only this worker
// mutates it.
func (s *Scheduler) processFile(ctx context.Context, f source.File, cfg core.SearchConfig) (record *core.FileRecord) {
	record = &core.FileRecord{
		Id:       core.IDFromPath(f.Path()),
		FileName: f.Name(),
		FilePath: f.Path(),
		FileType: f.ContentType(),
	}

	defer func() {
		if r := recover(); r != nil {
			record.Status = core.StatusError
			record.Error = fmt.Sprintf("processing panic: %v", r)
			record.Matches = nil
			record.MatchCount = 0
			record.TotalOccurrences = 0
			s.logger.Error("recovered file processing panic", "path", f.Path(), "panic", r)
		}
	}()

	text, err := s.router.Extract(ctx, f)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			record.Status = core.StatusUnsupported
			return record
		}
		record.Status = core.StatusError
		record.Error = err.Error()
		s.logger.Debug("extraction failed", "path", f.Path(), "err", err)
		return record
	}

	matches, err := match.FindMatches(text, cfg)
	if err != nil {
		record.Status = core.StatusError
		record.Error = err.Error()
		return record
	}

	record.Status = core.StatusSuccess
	record.Matches = matches
	record.MatchCount = len(matches)
	for _, m := range matches {
		record.TotalOccurrences += m.Occurrences
	}
	return record
}

// snapshot derives run statistics from the store and overlays the
// progress counters the store cannot know.
func (s *Scheduler) snapshot(store *results.Store, processed, total int) core.ProcessingStats {
	stats := store.Stats()
	stats.FilesProcessed = processed
	stats.FilesTotal = total
	return stats
}
