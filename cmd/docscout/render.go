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


package main

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/poiesic/docscout/core"
	"github.com/poiesic/docscout/match"
	"github.com/poiesic/docscout/results"
)

var (
	fileStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	countStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	contextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).PaddingLeft(4)
)

// innermostHighlight finds a marker pair with no nested markers inside.
var innermostHighlight = regexp.MustCompile(
	match.HighlightOpen + "([^" + match.HighlightOpen + match.HighlightClose + "]*)" + match.HighlightClose)

// styleHighlights replaces the matcher's highlight markers with terminal
// styling. Sequential term highlighting can nest marker pairs, so the
// innermost pair is resolved first until none remain.
func styleHighlights(s string) string {
	for innermostHighlight.MatchString(s) {
		s = innermostHighlight.ReplaceAllStringFunc(s, func(m string) string {
			inner := strings.TrimSuffix(strings.TrimPrefix(m, match.HighlightOpen), match.HighlightClose)
			return highlightStyle.Render(inner)
		})
	}
	return s
}

// renderResults prints the first page of the ranked results followed by
// the run statistics.
func renderResults(w io.Writer, store *results.Store, stats core.ProcessingStats) {
	if stats.TotalMatches == 0 {
		fmt.Fprintln(w, "No results found.")
		fmt.Fprintln(w, summaryLine(stats))
		return
	}

	for _, record := range store.Page(0) {
		switch record.Status {
		case core.StatusError:
			fmt.Fprintf(w, "%s  %s\n", fileStyle.Render(record.FilePath), errorStyle.Render(record.Error))
			continue
		case core.StatusUnsupported:
			fmt.Fprintf(w, "%s  %s\n", fileStyle.Render(record.FilePath), countStyle.Render("unsupported type"))
			continue
		}
		if record.MatchCount == 0 {
			continue
		}

		fmt.Fprintf(w, "%s  %s\n",
			fileStyle.Render(record.FilePath),
			countStyle.Render(fmt.Sprintf("%d matching lines, %d occurrences", record.MatchCount, record.TotalOccurrences)))

		for _, m := range record.Matches {
			fmt.Fprintf(w, "  line %d:\n", m.LineNumber)
			fmt.Fprintln(w, contextStyle.Render(styleHighlights(m.Context)))
		}
		fmt.Fprintln(w)
	}

	if store.PageCount() > 1 {
		fmt.Fprintf(w, "Showing %d of %d files.\n", len(store.Page(0)), store.Len())
	}
	fmt.Fprintln(w, summaryLine(stats))
}

func summaryLine(stats core.ProcessingStats) string {
	return fmt.Sprintf("Processed %d files: %d matched lines, %d occurrences, %d failed, %d unsupported.",
		stats.FilesProcessed, stats.TotalMatches, stats.TotalOccurrences, stats.Failed, stats.Unsupported)
}
