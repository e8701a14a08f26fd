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


package match

import (
	"fmt"
	"regexp"

	"github.com/poiesic/docscout/core"
)

// Term is a compiled occurrence counter for a single search term under a
// fixed set of search options. A Term is immutable and safe for
// concurrent use.
type Term struct {
	text string
	re   *regexp.Regexp
}

// CompileTerm builds the matcher for one term. Unless opts.Literal is set,
// the term text is used verbatim as pattern source, so a term containing
// pattern metacharacters is interpreted as a pattern rather than a literal
// string. CaseSensitive toggles case folding; WholeWord anchors the term
// at word boundaries.
func CompileTerm(term string, opts core.SearchOptions) (*Term, error) {
	if term == "" {
		return nil, ErrEmptyTerm
	}

	src := term
	if opts.Literal {
		src = regexp.QuoteMeta(term)
	}
	if opts.WholeWord {
		src = `\b(?:` + src + `)\b`
	}
	if !opts.CaseSensitive {
		src = `(?i)` + src
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadTerm, term, err)
	}

	return &Term{text: term, re: re}, nil
}

// CompileTerms compiles every term of the configuration, preserving order.
// Any malformed term fails the whole compilation.
func CompileTerms(cfg core.SearchConfig) ([]*Term, error) {
	terms := make([]*Term, len(cfg.Terms))
	for i, text := range cfg.Terms {
		term, err := CompileTerm(text, cfg.Options)
		if err != nil {
			return nil, err
		}
		terms[i] = term
	}
	return terms, nil
}

// Text returns the original term text as configured by the user.
func (t *Term) Text() string {
	return t.text
}

// Count returns the number of non-overlapping occurrences of the term on
// one line.
func (t *Term) Count(line string) int {
	return len(t.re.FindAllStringIndex(line, -1))
}

// Highlight wraps every occurrence of the term in text with the open and
// close markers.
func (t *Term) Highlight(text, open, close string) string {
	return t.re.ReplaceAllStringFunc(text, func(m string) string {
		return open + m + close
	})
}
