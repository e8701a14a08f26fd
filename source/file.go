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
	"io"
)

// File describes a single document exposed by a Source.
// Implementations must be safe for concurrent use.
type File interface {
	// Name returns the base file name.
	Name() string

	// Path returns the tree-relative path, using forward slashes.
	// It is the file's identity within a run.
	Path() string

	// ContentType returns the declared MIME type of the file.
	ContentType() string

	// Size returns the file size in bytes.
	Size() int64

	// Open returns a reader over the file contents. The caller closes it.
	Open() (io.ReadCloser, error)
}

// Source enumerates the files of one scan run. Enumeration order is
// unspecified and may differ between runs over the same tree.
type Source interface {
	Files(ctx context.Context) ([]File, error)
}
