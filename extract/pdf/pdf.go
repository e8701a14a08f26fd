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


// Package pdf decodes PDF documents to plain text, page by page.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor decodes PDF documents. Safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a PDF extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the document text, one section per page, each
// preceded by a page header and separated by blank lines. A page that
// fails to decode yields a placeholder for that page only.
func (e *Extractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	var sb strings.Builder
	for n := 1; n <= reader.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		sb.WriteString(fmt.Sprintf("--- Page %d ---\n\n", n))

		text, err := extractPage(reader, n)
		if err != nil {
			sb.WriteString(fmt.Sprintf("[could not extract text from page %d]\n\n", n))
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	return sb.String(), nil
}

// extractPage decodes one page. The pdf library panics on some malformed
// content streams, so panics are converted to per-page errors.
func extractPage(reader *pdf.Reader, n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", n, r)
		}
	}()

	page := reader.Page(n)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: missing", n)
	}
	return page.GetPlainText(nil)
}
