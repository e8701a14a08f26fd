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
	"io"

	"github.com/poiesic/docscout/core"
	"github.com/poiesic/docscout/scan"
	"github.com/pterm/pterm"
)

// progressMonitor renders scan progress as a terminal progress bar.
// The scheduler invokes it from the coordinating path only.
type progressMonitor struct {
	writer    io.Writer
	bar       *pterm.ProgressbarPrinter
	processed int
}

var _ scan.Monitor = (*progressMonitor)(nil)

func newProgressMonitor(w io.Writer) *progressMonitor {
	return &progressMonitor{writer: w}
}

func (m *progressMonitor) Start(totalFiles int) {
	m.processed = 0
	bar, err := pterm.DefaultProgressbar.
		WithTotal(totalFiles).
		WithTitle("Scanning").
		WithWriter(m.writer).
		WithRemoveWhenDone(true).
		Start()
	if err != nil {
		return
	}
	m.bar = bar
}

func (m *progressMonitor) BatchMerged(stats core.ProcessingStats) {
	if m.bar == nil {
		return
	}
	m.bar.Add(stats.FilesProcessed - m.processed)
	m.processed = stats.FilesProcessed
}

func (m *progressMonitor) NoMatches(stats core.ProcessingStats) {
	m.stop()
	pterm.Warning.WithWriter(m.writer).Printfln(
		"No results: %d files scanned, none matched.", stats.FilesProcessed)
}

func (m *progressMonitor) Finish(stats core.ProcessingStats) {
	m.stop()
	pterm.Success.WithWriter(m.writer).Printfln(
		"Scan complete: %d matching lines across %d files.", stats.TotalMatches, stats.FilesProcessed)
}

func (m *progressMonitor) stop() {
	if m.bar != nil {
		m.bar.Stop()
		m.bar = nil
	}
}
