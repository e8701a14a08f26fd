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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidSearchConfig indicates a SearchConfig failed validation.
	ErrInvalidSearchConfig = errors.New("invalid search configuration")

	// ErrInvalidFileRecord indicates a FileRecord failed validation.
	ErrInvalidFileRecord = errors.New("invalid file record")

	// ErrEmptyTerm indicates a search term is the empty string.
	ErrEmptyTerm = errors.New("search term cannot be empty")

	// ErrInvalidMatchType indicates an invalid MatchType value.
	ErrInvalidMatchType = errors.New("invalid match type")

	// ErrInvalidFileStatus indicates an invalid FileStatus value.
	ErrInvalidFileStatus = errors.New("invalid file status")

	// ErrEmptyFilePath indicates the FilePath field is empty.
	ErrEmptyFilePath = errors.New("file path cannot be empty")

	// ErrMatchCountMismatch indicates MatchCount disagrees with the number
	// of match records.
	ErrMatchCountMismatch = errors.New("match count does not equal number of matches")

	// ErrOccurrenceSumMismatch indicates TotalOccurrences disagrees with
	// the sum of per-match occurrence counts.
	ErrOccurrenceSumMismatch = errors.New("total occurrences does not equal sum of match occurrences")
)
