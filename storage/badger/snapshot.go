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

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/loupe-search/loupe/storage"
)

// SnapshotRepository implements storage.SnapshotRepository for BadgerDB.
type SnapshotRepository struct {
	backend *Backend
}

var _ storage.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository opens a snapshot store at the given path.
func NewSnapshotRepository(path string) (storage.SnapshotRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &SnapshotRepository{backend: backend}, nil
}

// newSnapshotRepository wraps an already-open backend.
func newSnapshotRepository(backend *Backend) *SnapshotRepository {
	return &SnapshotRepository{backend: backend}
}

// SaveSnapshot stores the blob and its metadata under the name,
// replacing any previous snapshot with that name.
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, name string, blob []byte) error {
	if name == "" {
		return storage.ErrInvalidName
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	info := storage.SnapshotInfo{
		Name:    name,
		Size:    len(blob),
		SavedAt: time.Now().UTC().Unix(),
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSnapshotBlobKey(name), blob); err != nil {
			return err
		}
		if err := tx.Set(makeSnapshotMetaKey(name), storage.MarshalSnapshotInfo(info)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadSnapshot retrieves the blob stored under the name.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, storage.ErrInvalidName
	}
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var blob []byte
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotBlobKey(name))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		blob, err = item.ValueCopy(nil)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// ListSnapshots returns metadata for every stored snapshot, ordered by
// name. Only the metadata prefix is scanned, so blobs stay on disk.
func (r *SnapshotRepository) ListSnapshots(ctx context.Context) ([]storage.SnapshotInfo, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var infos []storage.SnapshotInfo
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(snapshotMetaPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				info, err := storage.UnmarshalSnapshotInfo(val)
				if err != nil {
					return err
				}
				infos = append(infos, info)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return infos, nil
}

// DeleteSnapshot removes the blob and metadata stored under the name.
func (r *SnapshotRepository) DeleteSnapshot(ctx context.Context, name string) error {
	if name == "" {
		return storage.ErrInvalidName
	}
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeSnapshotBlobKey(name)); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(makeSnapshotBlobKey(name)); err != nil {
			return err
		}
		if err := tx.Delete(makeSnapshotMetaKey(name)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close closes the underlying backend.
func (r *SnapshotRepository) Close() error {
	return r.backend.Close()
}
