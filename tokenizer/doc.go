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


// Package tokenizer provides the default text analysis pipeline:
// lowercase, split on non-alphanumerics, drop English stop words, and
// reduce each remaining word to its Snowball stem.
//
// Token positions count only emitted tokens, so positional phrase
// matching is unaffected by stop words between phrase terms.
package tokenizer
