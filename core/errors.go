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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEmptyPath indicates the Path field is empty.
	ErrEmptyPath = errors.New("document path cannot be empty")

	// ErrInvalidModTime indicates a negative modification time.
	ErrInvalidModTime = errors.New("modification time cannot be negative")

	// ErrNegativeTokenCount indicates a negative token count.
	ErrNegativeTokenCount = errors.New("token count cannot be negative")
)
