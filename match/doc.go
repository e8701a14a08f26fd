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


// Package match implements multi-term line matching over extracted
// document text.
//
// FindMatches is a pure function: given text and a search configuration it
// returns match records ordered by ascending line number, each carrying a
// highlighted context window and a per-line occurrence total.
//
// The Term type is the shared occurrence-counting primitive. It is used
// both here and by the CSV exporter so that exported per-term counts can
// never diverge from the counts produced during matching.
package match
