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


package source

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
	"github.com/gabriel-vasile/mimetype"
)

// ignoreFileName is loaded from the tree root when present; .gitignore is
// used as a fallback.
const ignoreFileName = ".docscoutignore"

// extTypes maps well-known extensions to their declared content type,
// avoiding content sniffing for the formats the scanner cares about.
var extTypes = map[string]string{
	".txt":  "text/plain",
	".md":   "text/markdown",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// DirSource enumerates the regular files under a root directory,
// filtered by include/exclude glob patterns and ignore-file rules.
type DirSource struct {
	root    string
	include []string
	exclude []string
	ignore  gitignore.GitIgnore
	logger  *slog.Logger
}

// Option configures a DirSource.
type Option func(*DirSource) error

// WithIncludeGlobs restricts enumeration to paths matching at least one of
// the given doublestar patterns. Empty means every path is a candidate.
func WithIncludeGlobs(patterns ...string) Option {
	return func(s *DirSource) error {
		if err := validatePatterns(patterns); err != nil {
			return err
		}
		s.include = patterns
		return nil
	}
}

// WithExcludeGlobs removes paths matching any of the given doublestar
// patterns from enumeration.
func WithExcludeGlobs(patterns ...string) Option {
	return func(s *DirSource) error {
		if err := validatePatterns(patterns); err != nil {
			return err
		}
		s.exclude = patterns
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *DirSource) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewDirSource creates a source over the tree rooted at root.
func NewDirSource(root string, opts ...Option) (*DirSource, error) {
	if root == "" {
		return nil, ErrRootRequired
	}

	s := &DirSource{
		root:   root,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.ignore = loadIgnoreFile(filepath.Join(root, ignoreFileName), root)
	if s.ignore == nil {
		s.ignore = loadIgnoreFile(filepath.Join(root, ".gitignore"), root)
	}

	return s, nil
}

// Files walks the tree and returns a descriptor for every selected file.
func (s *DirSource) Files(ctx context.Context) ([]File, error) {
	var files []File

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && s.ignored(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !s.selected(rel) || s.ignored(rel, false) {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}

		files = append(files, &fsFile{
			abs:   path,
			rel:   rel,
			size:  info.Size(),
			ctype: detectContentType(path),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.root, err)
	}

	s.logger.Debug("enumerated files", "root", s.root, "count", len(files))
	return files, nil
}

// selected applies the include and exclude glob patterns to a
// tree-relative path.
func (s *DirSource) selected(rel string) bool {
	if len(s.include) > 0 {
		matched := false
		for _, pattern := range s.include {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, pattern := range s.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	return true
}

func (s *DirSource) ignored(rel string, isDir bool) bool {
	if s.ignore == nil {
		return false
	}
	match := s.ignore.Relative(rel, isDir)
	return match != nil && match.Ignore()
}

func validatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %q", ErrBadPattern, pattern)
		}
	}
	return nil
}

func loadIgnoreFile(path, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}

// detectContentType returns the declared type for a file: well-known
// extensions resolve directly, anything else is sniffed from content.
func detectContentType(path string) string {
	if ctype, ok := extTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ctype
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "application/octet-stream"
	}
	// Strip parameters such as "; charset=utf-8"
	ctype := mtype.String()
	if i := strings.Index(ctype, ";"); i >= 0 {
		ctype = strings.TrimSpace(ctype[:i])
	}
	return ctype
}

// fsFile is the filesystem-backed File implementation.
type fsFile struct {
	abs   string
	rel   string
	size  int64
	ctype string
}

func (f *fsFile) Name() string        { return filepath.Base(f.abs) }
func (f *fsFile) Path() string        { return f.rel }
func (f *fsFile) ContentType() string { return f.ctype }
func (f *fsFile) Size() int64         { return f.size }

func (f *fsFile) Open() (io.ReadCloser, error) {
	return os.Open(f.abs)
}
