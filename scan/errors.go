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

import "errors"

var (
	// ErrRouterRequired is returned when an extraction router is not provided.
	ErrRouterRequired = errors.New("extraction router required")

	// ErrStoreRequired is returned when a result store is not provided.
	ErrStoreRequired = errors.New("result store required")

	// ErrSourceRequired is returned when a file source is not provided.
	ErrSourceRequired = errors.New("file source required")

	// ErrInvalidBatchSize is returned when a batch size is not positive.
	ErrInvalidBatchSize = errors.New("batch size must be positive")

	// ErrInvalidPause is returned when the inter-batch pause is negative.
	ErrInvalidPause = errors.New("inter-batch pause cannot be negative")

	// ErrRunSuperseded is returned when a newer run has been started on
	// the same scheduler. The stale run stops merging and its remaining
	// batches are abandoned.
	ErrRunSuperseded = errors.New("run superseded by a newer run")
)
