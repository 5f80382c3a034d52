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


package core

import "fmt"

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Path must not be empty
//   - ModTime must not be negative
//   - TokenCount must not be negative
//
// NOT validated (populated by the index):
//   - ID (0 is valid before insertion assigns one)
//   - Content and Tags (an empty file is a legal document)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Path == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyPath)
	}

	if doc.ModTime < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidModTime)
	}

	if doc.TokenCount < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrNegativeTokenCount)
	}

	return nil
}
