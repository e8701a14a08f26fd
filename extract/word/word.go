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


// Package word decodes OOXML Word documents to raw text.
package word

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// ErrLegacyFormat is returned for pre-OOXML .doc files, which the decoder
// cannot read.
var ErrLegacyFormat = errors.New("legacy .doc format is not supported")

// oleMagic is the compound-file signature that identifies legacy .doc files.
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Extractor decodes Word documents in a single whole-document call.
// Safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a Word extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the raw text of an OOXML Word document, one line per
// paragraph or table.
func (e *Extractor) ExtractText(_ context.Context, data []byte) (string, error) {
	if bytes.HasPrefix(data, oleMagic) {
		return "", ErrLegacyFormat
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening word document: %w", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			sb.WriteString(it.String())
			sb.WriteString("\n")
		case *docx.Table:
			sb.WriteString(it.String())
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}
