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


// Package scan orchestrates a search run over a file set.
//
// The Scheduler partitions the input into fixed-size batches, fans the
// files of a batch out on a worker pool, waits for the batch to settle,
// and merges its records into the result store as one atomic append. A
// short cooperative pause separates batches. Per-file failures are
// downgraded to error records and never abort the run.
//
// Progress is reported through the Monitor interface from the
// coordinating path. Each call to Run claims a new generation; starting a
// newer run, or calling Invalidate, makes a stale in-flight run stop at
// its next batch boundary instead of interleaving results.
package scan
