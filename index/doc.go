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


// Package index implements the inverted index at the heart of loupe:
// a document store with monotonic id assignment, positional term
// postings, a tag index, an incremental corpus synchronizer, and the
// multi-mode search pipeline (keyword/BM25, phrase, wildcard, fuzzy,
// tag) with snippet generation and an LRU result cache.
//
// Concurrency contract: mutating operations (AddDocument,
// RemoveDocument, SyncDirectory, Rebuild) must be serialized by the
// caller. Searches are read-only and may run concurrently with each
// other; the result cache is the only structure mutated on the read
// path and is internally synchronized.
package index
