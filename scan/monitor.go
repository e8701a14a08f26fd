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


package scan

import "github.com/poiesic/docscout/core"

// Monitor provides hooks to observe a scan run.
// Implement this interface to drive progress reporting while batches are
// processed. Hooks are invoked from the coordinating path, never from
// per-file workers, so implementations need not be thread-safe with
// respect to each other.
type Monitor interface {
	// Start is called once, before the first batch, with the total
	// number of files in the run.
	Start(totalFiles int)

	// BatchMerged is called after each batch has settled and been merged
	// into the result store, with the statistics over everything merged
	// so far.
	BatchMerged(stats core.ProcessingStats)

	// NoMatches is called at end of run when every file record has zero
	// matches. It replaces Finish; the run itself succeeded.
	NoMatches(stats core.ProcessingStats)

	// Finish is called at end of run with the final statistics, unless
	// the run produced no matches at all.
	Finish(stats core.ProcessingStats)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ int)                        {}
func (n *noopMonitor) BatchMerged(_ core.ProcessingStats) {}
func (n *noopMonitor) NoMatches(_ core.ProcessingStats)   {}
func (n *noopMonitor) Finish(_ core.ProcessingStats)      {}
