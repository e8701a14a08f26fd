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


// Package source defines the input boundary of a scan run.
//
// A Source enumerates File descriptors: name, tree-relative path, declared
// content type, size, and a content accessor. Enumeration order is
// unspecified and callers must not depend on it.
//
// DirSource walks a filesystem tree, applying include/exclude glob
// patterns and ignore-file rules, and detects each file's declared type
// from its extension or content sniffing.
package source
