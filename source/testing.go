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
	"bytes"
	"context"
	"io"
	"path"
)

// MemFile is an in-memory File implementation for tests.
type MemFile struct {
	FilePath string
	Type     string
	Data     []byte
	// FileSize overrides the reported size when non-zero, so oversize
	// behaviour can be tested without allocating the bytes.
	FileSize int64
	// OpenErr, when set, is returned by Open.
	OpenErr error
}

// NewMemFile builds a MemFile from a tree-relative path, declared type and
// contents.
func NewMemFile(filePath, contentType string, data []byte) *MemFile {
	return &MemFile{FilePath: filePath, Type: contentType, Data: data}
}

func (f *MemFile) Name() string        { return path.Base(f.FilePath) }
func (f *MemFile) Path() string        { return f.FilePath }
func (f *MemFile) ContentType() string { return f.Type }

func (f *MemFile) Size() int64 {
	if f.FileSize > 0 {
		return f.FileSize
	}
	return int64(len(f.Data))
}

func (f *MemFile) Open() (io.ReadCloser, error) {
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	return io.NopCloser(bytes.NewReader(f.Data)), nil
}

// SliceSource is a fixed in-memory Source for tests.
type SliceSource []File

// Files returns the slice unchanged.
func (s SliceSource) Files(_ context.Context) ([]File, error) {
	return s, nil
}
