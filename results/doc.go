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


// Package results accumulates the file records of a scan run.
//
// The Store merges records one settled batch at a time and keeps the full
// set sorted by match count descending, with file path ascending as a
// deterministic tie-break. A fixed-page-size view supports display without
// altering the sort; statistics always consider the full set.
package results
