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


package storage

import (
	"context"
)

// SnapshotInfo describes a stored index snapshot.
type SnapshotInfo struct {
	// Name is the caller-chosen snapshot identifier, unique per store.
	Name string

	// Size is the snapshot blob size in bytes.
	Size int

	// SavedAt is the save time as a Unix timestamp in seconds.
	SavedAt int64
}

// SnapshotRepository persists serialized index snapshots by name.
// Implementations must be thread-safe and support concurrent access.
type SnapshotRepository interface {
	// SaveSnapshot stores a snapshot blob under the given name,
	// replacing any existing snapshot with that name.
	SaveSnapshot(ctx context.Context, name string, blob []byte) error

	// LoadSnapshot retrieves the snapshot blob stored under the name.
	// Returns ErrNotFound if no such snapshot exists.
	LoadSnapshot(ctx context.Context, name string) ([]byte, error)

	// ListSnapshots returns metadata for every stored snapshot,
	// ordered by name.
	ListSnapshots(ctx context.Context) ([]SnapshotInfo, error)

	// DeleteSnapshot removes the snapshot stored under the name.
	// Returns ErrNotFound if no such snapshot exists.
	DeleteSnapshot(ctx context.Context, name string) error

	// Close closes the storage backend and releases resources.
	Close() error
}
