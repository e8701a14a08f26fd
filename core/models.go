package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for a scanned file, derived from its
// tree-relative path. Identical paths produce identical IDs.
type ID uint64

// IDFromPath generates a deterministic ID from a tree-relative file path
// using BLAKE2b hashing.
func IDFromPath(path string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(path))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// MatchType controls how per-term occurrence counts combine into a
// line-level match decision.
type MatchType int

const (
	// MatchAll requires every configured term to occur on the line.
	MatchAll MatchType = iota + 1
	// MatchAny requires at least one configured term to occur on the line.
	MatchAny
)

// FileStatus describes the outcome of processing a single file.
type FileStatus int

const (
	// StatusSuccess means the file was decoded and matched without error.
	// A successful file may still have zero matches.
	StatusSuccess FileStatus = iota + 1
	// StatusError means extraction or matching failed for the file.
	StatusError
	// StatusUnsupported means the file's type has no decoder. Not an error.
	StatusUnsupported
)

// String returns a human-readable name for the status.
func (s FileStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	case StatusUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// SearchOptions configure how search terms are matched against lines.
type SearchOptions struct {
	MatchType     MatchType
	CaseSensitive bool
	WholeWord     bool
	// Literal quotes pattern metacharacters in terms. When false (the
	// default), term text is used verbatim as pattern source.
	Literal bool
}

// SearchConfig is one run's search: an ordered term list plus options.
// Term order affects display and export column order only, never the
// matching outcome.
type SearchConfig struct {
	Terms   []string
	Options SearchOptions
}

// MatchRecord is one matching line with its highlighted context window.
type MatchRecord struct {
	Line       string
	LineNumber int // 1-based
	// Context is the span of lines around the match, joined with the
	// original line breaks, with term occurrences wrapped in markers.
	Context string
	// Occurrences is the sum across all configured terms of that term's
	// occurrence count on the matched line.
	Occurrences int
}

// FileRecord is the complete processing result for one file. It is created
// when the file begins processing, mutated only by the worker handling
// the file, and becomes read-only once merged into the result store.
type FileRecord struct {
	Id       ID
	FileName string
	FilePath string // tree-relative
	FileType string
	Status   FileStatus
	Error    string // populated when Status is StatusError
	Matches  []MatchRecord
	// MatchCount is always len(Matches); TotalOccurrences is always the
	// sum of Matches[i].Occurrences.
	MatchCount       int
	TotalOccurrences int
}

// ProcessingStats is a derived, point-in-time snapshot of a run. It is
// reporting state only, never authoritative.
type ProcessingStats struct {
	FilesProcessed   int
	FilesTotal       int
	Succeeded        int
	Failed           int
	Unsupported      int
	TotalMatches     int
	TotalOccurrences int
	HeapBytes        uint64 // heap in use when the snapshot was taken
}
