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


// Package extract routes files to the correct text decoder.
//
// The Router dispatches on a file's declared content type or extension:
// PDF and Word documents go to their collaborator decoders, text files are
// read as UTF-8 directly, and everything else is classified as
// unsupported. A fixed size guard rejects oversized files before any
// decode attempt.
//
// Decoder internals live in the pdf and word subpackages behind the
// PDFExtractor and WordExtractor interfaces; mock provides test doubles.
package extract
