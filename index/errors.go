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


package index

import "errors"

var (
	// ErrTokenizerRequired is returned when a tokenizer is not provided.
	ErrTokenizerRequired = errors.New("tokenizer required")

	// ErrExtractorRequired is returned when a content extractor is not provided.
	ErrExtractorRequired = errors.New("content extractor required")

	// ErrNotADirectory indicates the synchronization target is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrInvalidCacheCapacity indicates a non-positive search cache capacity.
	ErrInvalidCacheCapacity = errors.New("cache capacity must be positive")

	// ErrSerializationFailed indicates the index could not be encoded.
	ErrSerializationFailed = errors.New("index serialization failed")

	// ErrDeserializationFailed indicates a corrupt or structurally invalid blob.
	ErrDeserializationFailed = errors.New("index deserialization failed")
)
