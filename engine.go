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


package loupe

import (
	"context"
	"log/slog"
	"sync"

	"github.com/loupe-search/loupe/config"
	"github.com/loupe-search/loupe/core"
	"github.com/loupe-search/loupe/extract"
	"github.com/loupe-search/loupe/index"
	"github.com/loupe-search/loupe/storage"
	"github.com/loupe-search/loupe/storage/badger"
	"github.com/loupe-search/loupe/tokenizer"
)

// DefaultSnapshotName is the snapshot used by Save and Load when the
// caller does not pick one.
const DefaultSnapshotName = "default"

// Engine ties the in-memory index, the content extractors, and the
// snapshot store into one full-text search facade.
//
// Reads may run concurrently; the engine serializes mutating calls
// (LoadDirectory, AddDocument, RemoveDocument, Restore) internally.
type Engine struct {
	idx       *index.Index
	registry  *extract.Registry
	snapshots storage.SnapshotRepository
	cfg       *config.Config
	logger    *slog.Logger

	// mu guards idx: writers replace or mutate it, readers hold RLock so
	// Restore cannot swap the pointer underneath them.
	mu sync.RWMutex
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	cfg       *config.Config
	logger    *slog.Logger
	snapshots storage.SnapshotRepository
}

// WithConfig supplies a loaded configuration instead of the defaults.
func WithConfig(cfg *config.Config) EngineOption {
	return func(o *engineOptions) {
		o.cfg = cfg
	}
}

// WithLogger sets the structured logger used by the engine and its
// index.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithSnapshotRepository substitutes the snapshot store, bypassing the
// configured storage path. Used by tests with an in-memory store.
func WithSnapshotRepository(repo storage.SnapshotRepository) EngineOption {
	return func(o *engineOptions) {
		o.snapshots = repo
	}
}

// NewEngine creates a ready engine: a fresh index, the default
// extractor registry, and a BadgerDB snapshot store at the configured
// storage path.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		cfg:    config.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	idx, err := newIndex(options.cfg, options.logger)
	if err != nil {
		return nil, err
	}

	snapshots := options.snapshots
	if snapshots == nil {
		snapshots, err = badger.NewSnapshotRepository(options.cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
	}

	return &Engine{
		idx:       idx,
		registry:  extract.NewRegistry(),
		snapshots: snapshots,
		cfg:       options.cfg,
		logger:    options.logger,
	}, nil
}

func newIndex(cfg *config.Config, logger *slog.Logger) (*index.Index, error) {
	return index.New(tokenizer.New(),
		index.WithLogger(logger),
		index.WithCacheCapacity(cfg.Index.CacheCapacity),
		index.WithPoolSize(cfg.Index.PoolSize),
		index.WithBM25Parameters(cfg.Index.BM25K1, cfg.Index.BM25B),
	)
}

// Close releases the snapshot store.
func (e *Engine) Close() error {
	if err := e.snapshots.Close(); err != nil {
		e.logger.Error("error closing snapshot store", "err", err)
		return err
	}
	return nil
}

// LoadDirectory synchronizes the index with the files in dir.
func (e *Engine) LoadDirectory(dir string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.idx.SyncDirectory(dir, e.registry)
}

// AddDocument indexes a single document and returns its identifier.
func (e *Engine) AddDocument(doc core.Document) (core.DocumentID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.idx.AddDocument(doc)
}

// RemoveDocument removes a document by id, reporting whether it existed.
func (e *Engine) RemoveDocument(id core.DocumentID) (core.Document, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.idx.RemoveDocument(id)
}

// Search runs a query against the index.
func (e *Engine) Search(query string) []core.SearchResult {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx.Search(query)
}

// SearchWithMonitor runs a query and reports progress to the monitor.
func (e *Engine) SearchWithMonitor(query string, monitor index.Monitor) []core.SearchResult {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx.SearchWithMonitor(query, monitor)
}

// GetDocument retrieves an indexed document by id.
func (e *Engine) GetDocument(id core.DocumentID) (core.Document, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx.GetDocument(id)
}

// TotalDocuments reports the number of indexed documents.
func (e *Engine) TotalDocuments() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx.TotalDocuments()
}

// SupportedExtensions lists the file extensions the engine can index.
func (e *Engine) SupportedExtensions() []string {
	return e.registry.Extensions()
}

// Save serializes the index and stores it as a named snapshot.
func (e *Engine) Save(ctx context.Context, name string) error {
	e.mu.RLock()
	blob, err := e.idx.Serialize()
	e.mu.RUnlock()
	if err != nil {
		return err
	}
	if err := e.snapshots.SaveSnapshot(ctx, name, blob); err != nil {
		return err
	}
	e.logger.Info("saved index snapshot", "name", name, "bytes", len(blob))
	return nil
}

// Restore replaces the live index with a named snapshot's contents.
func (e *Engine) Restore(ctx context.Context, name string) error {
	blob, err := e.snapshots.LoadSnapshot(ctx, name)
	if err != nil {
		return err
	}

	idx, err := index.Deserialize(blob, tokenizer.New(),
		index.WithLogger(e.logger),
		index.WithPoolSize(e.cfg.Index.PoolSize),
		index.WithBM25Parameters(e.cfg.Index.BM25K1, e.cfg.Index.BM25B),
	)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.idx = idx
	e.mu.Unlock()

	e.logger.Info("restored index snapshot", "name", name, "documents", idx.TotalDocuments())
	return nil
}

// Snapshots lists the stored snapshots.
func (e *Engine) Snapshots(ctx context.Context) ([]storage.SnapshotInfo, error) {
	return e.snapshots.ListSnapshots(ctx)
}

// DeleteSnapshot removes a named snapshot from the store.
func (e *Engine) DeleteSnapshot(ctx context.Context, name string) error {
	return e.snapshots.DeleteSnapshot(ctx, name)
}
