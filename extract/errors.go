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


package extract

import "errors"

var (
	// ErrProviderRequired is returned when a decoder provider is not provided.
	ErrProviderRequired = errors.New("decoder provider required")

	// ErrFileTooLarge is returned when a file exceeds the size limit.
	// The guard runs before any decode attempt.
	ErrFileTooLarge = errors.New("file exceeds size limit")

	// ErrUnsupportedType classifies a file with no decoder. It is a
	// classification, not a failure.
	ErrUnsupportedType = errors.New("unsupported file type")
)
