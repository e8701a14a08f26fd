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

import "fmt"

// ValidateSearchConfig validates a SearchConfig according to domain rules.
//
// Validation rules:
//   - Every term must be a non-empty string (duplicates are allowed)
//   - MatchType must be valid (All or Any)
//
// NOT validated:
//   - Term pattern syntax (a malformed term fails at match time, scoped
//     to the file being matched)
//   - An empty term list (legal; it simply never produces matches)
func ValidateSearchConfig(cfg SearchConfig) error {
	for i, term := range cfg.Terms {
		if term == "" {
			return fmt.Errorf("%w: term %d: %w", ErrInvalidSearchConfig, i, ErrEmptyTerm)
		}
	}

	if err := ValidateMatchType(cfg.Options.MatchType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSearchConfig, err)
	}

	return nil
}

// ValidateFileRecord validates a FileRecord according to domain rules.
//
// Validation rules:
//   - FilePath must not be empty
//   - Status must be valid
//   - MatchCount must equal len(Matches)
//   - TotalOccurrences must equal the sum of per-match occurrences
func ValidateFileRecord(record *FileRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidFileRecord)
	}

	if record.FilePath == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFileRecord, ErrEmptyFilePath)
	}

	if err := ValidateFileStatus(record.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFileRecord, err)
	}

	if record.MatchCount != len(record.Matches) {
		return fmt.Errorf("%w: %w", ErrInvalidFileRecord, ErrMatchCountMismatch)
	}

	sum := 0
	for _, m := range record.Matches {
		sum += m.Occurrences
	}
	if record.TotalOccurrences != sum {
		return fmt.Errorf("%w: %w", ErrInvalidFileRecord, ErrOccurrenceSumMismatch)
	}

	return nil
}

// ValidateMatchType validates that a MatchType has a valid value.
func ValidateMatchType(matchType MatchType) error {
	if matchType != MatchAll && matchType != MatchAny {
		return fmt.Errorf("%w: value %d", ErrInvalidMatchType, matchType)
	}
	return nil
}

// ValidateFileStatus validates that a FileStatus has a valid value.
func ValidateFileStatus(status FileStatus) error {
	if status != StatusSuccess && status != StatusError && status != StatusUnsupported {
		return fmt.Errorf("%w: value %d", ErrInvalidFileStatus, status)
	}
	return nil
}
