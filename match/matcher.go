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
	"strings"

	"github.com/poiesic/docscout/core"
)

// Highlight markers wrapped around each term occurrence inside a context
// window. Presentation layers translate them into styling of their choice.
const (
	HighlightOpen  = "«"
	HighlightClose = "»"
)

// contextRadius is the number of lines included on each side of a match.
const contextRadius = 2

// FindMatches scans text line by line and returns the matching lines,
// ordered by ascending line number. Every line, including blank ones, is a
// candidate. A matching line's Occurrences is the sum of all configured
// terms' non-overlapping occurrence counts on that line.
//
// An empty term list never matches. A malformed term returns an error for
// the whole text; callers isolate it at file granularity.
func FindMatches(text string, cfg core.SearchConfig) ([]core.MatchRecord, error) {
	if len(cfg.Terms) == 0 {
		return nil, nil
	}

	terms, err := CompileTerms(cfg)
	if err != nil {
		return nil, err
	}

	lines := splitLines(text)
	counts := make([]int, len(terms))

	var records []core.MatchRecord
	for i, line := range lines {
		total := 0
		for j, term := range terms {
			counts[j] = term.Count(line)
			total += counts[j]
		}

		if !lineMatches(counts, cfg.Options.MatchType) {
			continue
		}

		records = append(records, core.MatchRecord{
			Line:        line,
			LineNumber:  i + 1,
			Context:     highlightWindow(lines, i, terms),
			Occurrences: total,
		})
	}

	return records, nil
}

// lineMatches applies the match-type decision to one line's per-term counts.
func lineMatches(counts []int, matchType core.MatchType) bool {
	switch matchType {
	case core.MatchAll:
		for _, c := range counts {
			if c == 0 {
				return false
			}
		}
		return true
	case core.MatchAny:
		for _, c := range counts {
			if c > 0 {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// highlightWindow builds the highlighted context window for a match at
// 0-based line index i: lines [i-2, i+2] clipped to the text, joined with
// the original line breaks.
//
// Terms are highlighted sequentially, each over text that may already
// contain markers from earlier terms, so overlapping occurrences can
// produce nested or split marker pairs. That sequential behaviour is the
// documented contract.
func highlightWindow(lines []string, i int, terms []*Term) string {
	start := max(0, i-contextRadius)
	end := min(len(lines)-1, i+contextRadius)

	window := strings.Join(lines[start:end+1], "\n")
	for _, term := range terms {
		window = term.Highlight(window, HighlightOpen, HighlightClose)
	}
	return window
}

// splitLines splits text on line-break boundaries, tolerating both LF and
// CRLF endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
