// Copyright 2025 Loupe Search
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


// Package extract converts source files into plain text for indexing.
//
// A Registry maps file extensions to Extractor implementations: plain
// text and markdown pass through unchanged, HTML yields the body text,
// and PDF yields the embedded text layer. Files with unregistered
// extensions are rejected with ErrUnsupportedFileType; callers decide
// whether to skip or fail.
package extract
