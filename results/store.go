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


package results

import (
	"runtime"
	"sort"
	"sync"

	"github.com/poiesic/docscout/core"
)

// DefaultPageSize is the number of records per page in the paginated view.
const DefaultPageSize = 20

// Store accumulates the file records of one run. Records are merged one
// batch at a time, re-sorted by match count descending with file path
// ascending as the tie-break, and exposed through a paginated view.
// Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	records  []*core.FileRecord
	seen     map[core.ID]bool
	pageSize int
}

// Option configures a Store.
type Option func(*Store) error

// WithPageSize sets the fixed page size of the paginated view.
// Default is DefaultPageSize.
func WithPageSize(size int) Option {
	return func(s *Store) error {
		if size < 1 {
			return ErrInvalidPageSize
		}
		s.pageSize = size
		return nil
	}
}

// NewStore creates an empty result store.
func NewStore(opts ...Option) (*Store, error) {
	s := &Store{
		seen:     make(map[core.ID]bool),
		pageSize: DefaultPageSize,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// AddBatch merges one settled batch into the store as a single atomic
// append, then re-sorts the full set. A record whose Id was merged before
// is dropped, so a file contributes exactly once per run. Merged records
// are read-only from this point on; later sorts reorder the store, never
// a record's fields.
func (s *Store) AddBatch(batch []*core.FileRecord) {
	if len(batch) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range batch {
		if record == nil || s.seen[record.Id] {
			continue
		}
		s.seen[record.Id] = true
		s.records = append(s.records, record)
	}

	sort.SliceStable(s.records, func(i, j int) bool {
		if s.records[i].MatchCount != s.records[j].MatchCount {
			return s.records[i].MatchCount > s.records[j].MatchCount
		}
		return s.records[i].FilePath < s.records[j].FilePath
	})
}

// Len returns the number of merged records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Records returns a snapshot of the full sorted set.
func (s *Store) Records() []*core.FileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*core.FileRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Page returns the records of the 0-based page n in the current sort
// order. Pages outside the populated range are empty. Paging never alters
// the underlying sort or the statistics, which always consider the full
// set.
func (s *Store) Page(n int) []*core.FileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n < 0 {
		return nil
	}

	start := n * s.pageSize
	if start >= len(s.records) {
		return nil
	}
	end := min(start+s.pageSize, len(s.records))

	out := make([]*core.FileRecord, end-start)
	copy(out, s.records[start:end])
	return out
}

// PageCount returns the number of populated pages.
func (s *Store) PageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (len(s.records) + s.pageSize - 1) / s.pageSize
}

// PageSize returns the fixed page size of the paginated view.
func (s *Store) PageSize() int {
	return s.pageSize
}

// Stats derives a point-in-time snapshot over the full record set,
// including a heap sample taken at call time. FilesTotal is filled in by
// the caller driving the run; the store only knows what has been merged.
func (s *Store) Stats() core.ProcessingStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := core.ProcessingStats{
		FilesProcessed: len(s.records),
	}
	for _, record := range s.records {
		switch record.Status {
		case core.StatusSuccess:
			stats.Succeeded++
		case core.StatusError:
			stats.Failed++
		case core.StatusUnsupported:
			stats.Unsupported++
		}
		stats.TotalMatches += record.MatchCount
		stats.TotalOccurrences += record.TotalOccurrences
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	stats.HeapBytes = mem.HeapInuse

	return stats
}
