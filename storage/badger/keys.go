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


package badger

import "fmt"

// Key prefixes for different data types
const (
	snapshotBlobPrefix = "snpblb"
	snapshotMetaPrefix = "snpmet"
)

// makeSnapshotBlobKey generates the key holding a snapshot's blob.
func makeSnapshotBlobKey(name string) []byte {
	return []byte(fmt.Sprintf("%s:%s", snapshotBlobPrefix, name))
}

// makeSnapshotMetaKey generates the key holding a snapshot's metadata.
// Metadata lives under its own prefix so listings never load blobs.
func makeSnapshotMetaKey(name string) []byte {
	return []byte(fmt.Sprintf("%s:%s", snapshotMetaPrefix, name))
}
