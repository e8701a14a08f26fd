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


package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/poiesic/docscout/source"
)

// MaxFileSize is the fixed upper bound on decodable files: 50 MiB.
// It protects memory independently of file type.
const MaxFileSize = 50 << 20

// Word document content types, legacy and OOXML.
const (
	typeWordLegacy = "application/msword"
	typeWordOOXML  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Router dispatches a file to the correct decoder by its declared type or
// extension. Safe for concurrent use.
type Router struct {
	pdf    PDFExtractor
	word   WordExtractor
	logger *slog.Logger
}

// Option configures a Router.
type Option func(*Router) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRouter creates a router backed by the given decoder provider.
func NewRouter(provider Provider, opts ...Option) (*Router, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}

	r := &Router{
		pdf:    provider.PDF(),
		word:   provider.Word(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Extract returns the plain text of a file. Files above MaxFileSize are
// rejected before any decode attempt. Files whose type has no decoder
// return ErrUnsupportedType; callers classify that as a status, not a
// failure.
func (r *Router) Extract(ctx context.Context, f source.File) (string, error) {
	if f.Size() > MaxFileSize {
		return "", fmt.Errorf("%w: %s is %d bytes (limit %d)",
			ErrFileTooLarge, f.Path(), f.Size(), MaxFileSize)
	}

	switch {
	case isPDF(f):
		data, err := readAll(f)
		if err != nil {
			return "", err
		}
		text, err := r.pdf.ExtractText(ctx, data)
		if err != nil {
			return "", fmt.Errorf("extracting pdf text from %s: %w", f.Path(), err)
		}
		return text, nil

	case isWord(f):
		data, err := readAll(f)
		if err != nil {
			return "", err
		}
		text, err := r.word.ExtractText(ctx, data)
		if err != nil {
			return "", fmt.Errorf("extracting word text from %s: %w", f.Path(), err)
		}
		return text, nil

	case isText(f):
		data, err := readAll(f)
		if err != nil {
			return "", err
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, f.Path(), f.ContentType())
	}
}

func readAll(f source.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Path(), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Path(), err)
	}
	return data, nil
}

func isPDF(f source.File) bool {
	return f.ContentType() == "application/pdf" || hasExt(f, ".pdf")
}

func isWord(f source.File) bool {
	switch f.ContentType() {
	case typeWordLegacy, typeWordOOXML:
		return true
	}
	return hasExt(f, ".doc") || hasExt(f, ".docx")
}

func isText(f source.File) bool {
	return strings.HasPrefix(f.ContentType(), "text/") ||
		hasExt(f, ".txt") || hasExt(f, ".md")
}

func hasExt(f source.File, ext string) bool {
	return strings.EqualFold(path.Ext(f.Name()), ext)
}
