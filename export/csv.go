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


package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/poiesic/docscout/core"
	"github.com/poiesic/docscout/match"
	"github.com/poiesic/docscout/results"
)

// CSV derives a tabular summary from the store for every file with at
// least one match, in the store's current sort order. The header is file
// name, file path, one column per configured term in configured order,
// and the total occurrences. Per-term counts are recomputed from each
// record's matched-line text with the same compiled terms the matcher
// uses, so the two can never diverge.
func CSV(store *results.Store, cfg core.SearchConfig) ([]byte, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	terms, err := match.CompileTerms(cfg)
	if err != nil {
		return nil, fmt.Errorf("compiling terms for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(terms)+3)
	header = append(header, "File Name", "File Path")
	for _, term := range terms {
		header = append(header, term.Text())
	}
	header = append(header, "Total Occurrences")
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}

	for _, record := range store.Records() {
		if record.MatchCount == 0 {
			continue
		}

		row := make([]string, 0, len(terms)+3)
		row = append(row, record.FileName, record.FilePath)
		for _, term := range terms {
			count := 0
			for _, m := range record.Matches {
				count += term.Count(m.Line)
			}
			row = append(row, strconv.Itoa(count))
		}
		row = append(row, strconv.Itoa(record.TotalOccurrences))

		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing csv row for %s: %w", record.FilePath, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}

// SuggestedName returns a date-suffixed file name for the exported
// document.
func SuggestedName(now time.Time) string {
	return fmt.Sprintf("docscout-results-%s.csv", now.Format("2006-01-02"))
}
