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
	"sync"

	"github.com/poiesic/docscout/extract/pdf"
	"github.com/poiesic/docscout/extract/word"
)

var (
	defaultOnce     sync.Once
	defaultProvider Provider
)

// Default returns the process-wide decoder provider. Initialization
// happens once, guarded for concurrent callers.
func Default() Provider {
	defaultOnce.Do(func() {
		defaultProvider = &provider{
			pdf:  pdf.NewExtractor(),
			word: word.NewExtractor(),
		}
	})
	return defaultProvider
}

type provider struct {
	pdf  PDFExtractor
	word WordExtractor
}

func (p *provider) PDF() PDFExtractor   { return p.pdf }
func (p *provider) Word() WordExtractor { return p.word }
