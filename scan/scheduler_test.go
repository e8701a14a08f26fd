package scan_test

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/docscout/core"
	"github.com/poiesic/docscout/extract"
	"github.com/poiesic/docscout/extract/mock"
	"github.com/poiesic/docscout/results"
	"github.com/poiesic/docscout/scan"
	"github.com/poiesic/docscout/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const typeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// captureMonitor records every hook invocation. Hooks fire on the
// coordinating path, so no locking is needed.
type captureMonitor struct {
	total     int
	merged    []core.ProcessingStats
	noMatches bool
	finished  bool
	final     core.ProcessingStats
	onMerge   func()
}

func (m *captureMonitor) Start(total int) { m.total = total }

func (m *captureMonitor) BatchMerged(stats core.ProcessingStats) {
	m.merged = append(m.merged, stats)
	if m.onMerge != nil {
		m.onMerge()
	}
}

func (m *captureMonitor) NoMatches(stats core.ProcessingStats) {
	m.noMatches = true
	m.final = stats
}

func (m *captureMonitor) Finish(stats core.ProcessingStats) {
	m.finished = true
	m.final = stats
}

func newScheduler(t *testing.T, provider extract.Provider, opts ...scan.Option) *scan.Scheduler {
	t.Helper()
	router, err := extract.NewRouter(provider)
	require.NoError(t, err)

	opts = append([]scan.Option{scan.WithPause(0)}, opts...)
	scheduler, err := scan.NewScheduler(router, opts...)
	require.NoError(t, err)
	t.Cleanup(scheduler.Release)
	return scheduler
}

func newStore(t *testing.T) *results.Store {
	t.Helper()
	store, err := results.NewStore()
	require.NoError(t, err)
	return store
}

func anyConfig(terms ...string) core.SearchConfig {
	return core.SearchConfig{
		Terms:   terms,
		Options: core.SearchOptions{MatchType: core.MatchAny},
	}
}

func findRecord(t *testing.T, store *results.Store, path string) *core.FileRecord {
	t.Helper()
	for _, record := range store.Records() {
		if record.FilePath == path {
			return record
		}
	}
	t.Fatalf("no record for %s", path)
	return nil
}

func TestRun_EndToEnd(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.MockPDF.WithExtractTextFunc(func(_ context.Context, _ []byte) (string, error) {
		return "--- Page 1 ---\n\nnothing relevant here\n\n", nil
	})
	provider.MockWord.WithExtractTextFunc(func(_ context.Context, _ []byte) (string, error) {
		return "", errors.New("corrupt document")
	})

	scheduler := newScheduler(t, provider)
	store := newStore(t)
	monitor := &captureMonitor{}

	src := source.SliceSource{
		source.NewMemFile("a.txt", "text/plain", []byte("alpha then alpha again\nno hit")),
		source.NewMemFile("b.pdf", "application/pdf", []byte("%PDF")),
		source.NewMemFile("c.docx", typeDocx, []byte("PK")),
	}

	stats, err := scheduler.Run(context.Background(), src, anyConfig("alpha"), store, monitor)
	require.NoError(t, err)

	require.Equal(t, 3, store.Len())
	assert.Equal(t, 3, monitor.total)
	assert.True(t, monitor.finished)
	assert.False(t, monitor.noMatches)

	a := findRecord(t, store, "a.txt")
	assert.Equal(t, core.StatusSuccess, a.Status)
	assert.Equal(t, 1, a.MatchCount)
	assert.Equal(t, 2, a.TotalOccurrences)
	require.NoError(t, core.ValidateFileRecord(a))

	b := findRecord(t, store, "b.pdf")
	assert.Equal(t, core.StatusSuccess, b.Status)
	assert.Equal(t, 0, b.MatchCount)

	c := findRecord(t, store, "c.docx")
	assert.Equal(t, core.StatusError, c.Status)
	assert.Contains(t, c.Error, "corrupt document")

	assert.Equal(t, 3, stats.FilesProcessed)
	assert.Equal(t, 3, stats.FilesTotal)
	assert.Equal(t, 1, stats.TotalMatches)
	assert.Equal(t, 2, stats.TotalOccurrences)
	assert.Equal(t, 1, stats.Failed)

	// the file with matches sorts first
	assert.Equal(t, "a.txt", store.Records()[0].FilePath)
}

func TestRun_BatchCadence(t *testing.T) {
	scheduler := newScheduler(t, mock.NewMockProvider(), scan.WithBatchSize(2))
	store := newStore(t)
	monitor := &captureMonitor{}

	src := source.SliceSource{
		source.NewMemFile("1.txt", "text/plain", []byte("needle")),
		source.NewMemFile("2.txt", "text/plain", []byte("hay")),
		source.NewMemFile("3.txt", "text/plain", []byte("hay")),
		source.NewMemFile("4.txt", "text/plain", []byte("hay")),
		source.NewMemFile("5.txt", "text/plain", []byte("hay")),
	}

	_, err := scheduler.Run(context.Background(), src, anyConfig("needle"), store, monitor)
	require.NoError(t, err)

	require.Len(t, monitor.merged, 3)
	assert.Equal(t, 2, monitor.merged[0].FilesProcessed)
	assert.Equal(t, 4, monitor.merged[1].FilesProcessed)
	assert.Equal(t, 5, monitor.merged[2].FilesProcessed)
	for _, stats := range monitor.merged {
		assert.Equal(t, 5, stats.FilesTotal)
	}
}

func TestRun_OversizeFileIsolated(t *testing.T) {
	scheduler := newScheduler(t, mock.NewMockProvider())
	store := newStore(t)

	big := source.NewMemFile("big.txt", "text/plain", []byte("needle"))
	big.FileSize = extract.MaxFileSize + 1

	src := source.SliceSource{
		big,
		source.NewMemFile("small.txt", "text/plain", []byte("needle")),
	}

	_, err := scheduler.Run(context.Background(), src, anyConfig("needle"), store, nil)
	require.NoError(t, err)

	rec := findRecord(t, store, "big.txt")
	assert.Equal(t, core.StatusError, rec.Status)
	assert.Contains(t, rec.Error, "size limit")
	assert.Equal(t, core.StatusSuccess, findRecord(t, store, "small.txt").Status)
}

func TestRun_UnsupportedTypeIsNotError(t *testing.T) {
	scheduler := newScheduler(t, mock.NewMockProvider())
	store := newStore(t)
	monitor := &captureMonitor{}

	src := source.SliceSource{
		source.NewMemFile("sheet.xlsx", "application/vnd.ms-excel", []byte{0x01}),
		source.NewMemFile("a.txt", "text/plain", []byte("needle")),
	}

	stats, err := scheduler.Run(context.Background(), src, anyConfig("needle"), store, monitor)
	require.NoError(t, err)

	rec := findRecord(t, store, "sheet.xlsx")
	assert.Equal(t, core.StatusUnsupported, rec.Status)
	assert.Empty(t, rec.Error)
	assert.Equal(t, 0, rec.MatchCount)

	assert.Equal(t, 1, stats.Unsupported)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, 1, stats.TotalMatches)
}

func TestRun_MalformedTermFailsPerFile(t *testing.T) {
	scheduler := newScheduler(t, mock.NewMockProvider())
	store := newStore(t)

	src := source.SliceSource{
		source.NewMemFile("a.txt", "text/plain", []byte("text")),
		source.NewMemFile("b.txt", "text/plain", []byte("text")),
	}

	// unbalanced pattern compiles per file, so each file fails in
	// isolation and the run itself succeeds
	_, err := scheduler.Run(context.Background(), src, anyConfig("[unbalanced"), store, nil)
	require.NoError(t, err)

	require.Equal(t, 2, store.Len())
	for _, record := range store.Records() {
		assert.Equal(t, core.StatusError, record.Status)
		assert.NotEmpty(t, record.Error)
	}
}

func TestRun_NoMatchesSignal(t *testing.T) {
	scheduler := newScheduler(t, mock.NewMockProvider())
	store := newStore(t)
	monitor := &captureMonitor{}

	src := source.SliceSource{
		source.NewMemFile("a.txt", "text/plain", []byte("nothing here")),
		source.NewMemFile("b.txt", "text/plain", []byte("nor here")),
	}

	_, err := scheduler.Run(context.Background(), src, anyConfig("needle"), store, monitor)
	require.NoError(t, err)

	assert.True(t, monitor.noMatches)
	assert.False(t, monitor.finished)
	assert.Equal(t, 2, monitor.final.FilesProcessed)
}

func TestRun_RejectsInvalidConfig(t *testing.T) {
	scheduler := newScheduler(t, mock.NewMockProvider())
	store := newStore(t)

	cfg := core.SearchConfig{Terms: []string{"ok", ""}}
	_, err := scheduler.Run(context.Background(), source.SliceSource{}, cfg, store, nil)
	assert.ErrorIs(t, err, core.ErrInvalidSearchConfig)
}

func TestRun_SupersededStopsAtBatchBoundary(t *testing.T) {
	scheduler := newScheduler(t, mock.NewMockProvider(), scan.WithBatchSize(1))
	store := newStore(t)

	monitor := &captureMonitor{}
	monitor.onMerge = func() {
		// a newer search arrives while this run is mid-flight
		scheduler.Invalidate()
	}

	src := source.SliceSource{
		source.NewMemFile("1.txt", "text/plain", []byte("needle")),
		source.NewMemFile("2.txt", "text/plain", []byte("needle")),
		source.NewMemFile("3.txt", "text/plain", []byte("needle")),
	}

	_, err := scheduler.Run(context.Background(), src, anyConfig("needle"), store, monitor)
	assert.ErrorIs(t, err, scan.ErrRunSuperseded)

	// the first batch merged; later batches were abandoned
	assert.Equal(t, 1, store.Len())
}

func TestNewScheduler_OptionValidation(t *testing.T) {
	router, err := extract.NewRouter(mock.NewMockProvider())
	require.NoError(t, err)

	_, err = scan.NewScheduler(nil)
	assert.ErrorIs(t, err, scan.ErrRouterRequired)

	_, err = scan.NewScheduler(router, scan.WithBatchSize(0))
	assert.ErrorIs(t, err, scan.ErrInvalidBatchSize)

	_, err = scan.NewScheduler(router, scan.WithPause(-1))
	assert.ErrorIs(t, err, scan.ErrInvalidPause)
}
