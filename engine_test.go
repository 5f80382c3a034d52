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
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-search/loupe/core"
	"github.com/loupe-search/loupe/storage"
	"github.com/loupe-search/loupe/storage/badger"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	repo, err := badger.NewMemorySnapshotRepository()
	require.NoError(t, err)

	engine, err := NewEngine(WithSnapshotRepository(repo))
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestEngineIndexAndSearch(t *testing.T) {
	engine := newTestEngine(t)

	id, err := engine.AddDocument(core.Document{
		Path:    "notes.txt",
		Title:   "notes",
		Content: "The linux kernel schedules threads. #systems",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, engine.TotalDocuments())

	t.Run("keyword", func(t *testing.T) {
		results := engine.Search("kernel")
		require.Len(t, results, 1)
		assert.Equal(t, id, results[0].Doc.ID)
	})

	t.Run("tag", func(t *testing.T) {
		require.Len(t, engine.Search("#systems"), 1)
	})

	t.Run("document lookup", func(t *testing.T) {
		doc, ok := engine.GetDocument(id)
		require.True(t, ok)
		assert.Equal(t, "notes", doc.Title)
	})

	t.Run("remove", func(t *testing.T) {
		removed, ok := engine.RemoveDocument(id)
		require.True(t, ok)
		assert.Equal(t, "notes.txt", removed.Path)
		assert.Empty(t, engine.Search("kernel"))
	})
}

func TestEngineLoadDirectory(t *testing.T) {
	engine := newTestEngine(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "guide.md"), []byte("# Searching\n\nA guide to searching."), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "page.html"), []byte("<html><body>Indexed markup</body></html>"), 0o644))

	require.NoError(t, engine.LoadDirectory(dir))
	assert.Equal(t, 2, engine.TotalDocuments())
	assert.Len(t, engine.Search("guide"), 1)
	assert.Len(t, engine.Search("markup"), 1)
}

func TestEngineSupportedExtensions(t *testing.T) {
	engine := newTestEngine(t)
	assert.ElementsMatch(t, []string{"txt", "md", "html", "pdf"}, engine.SupportedExtensions())
}

func TestEngineConcurrentReadsDuringRestore(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.AddDocument(core.Document{Path: "a.txt", Content: "durable content"})
	require.NoError(t, err)
	require.NoError(t, engine.Save(ctx, DefaultSnapshotName))

	// Readers must keep seeing a consistent index while Restore swaps it.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.Len(t, engine.Search("durable"), 1)
				assert.Equal(t, 1, engine.TotalDocuments())
			}
		}()
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, engine.Restore(ctx, DefaultSnapshotName))
	}
	wg.Wait()
}

func TestEngineSnapshots(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.AddDocument(core.Document{Path: "a.txt", Content: "durable content"})
	require.NoError(t, err)
	require.NoError(t, engine.Save(ctx, DefaultSnapshotName))

	t.Run("restore round trip", func(t *testing.T) {
		_, err := engine.AddDocument(core.Document{Path: "b.txt", Content: "transient content"})
		require.NoError(t, err)
		require.Equal(t, 2, engine.TotalDocuments())

		require.NoError(t, engine.Restore(ctx, DefaultSnapshotName))
		assert.Equal(t, 1, engine.TotalDocuments())
		assert.Len(t, engine.Search("durable"), 1)
		assert.Empty(t, engine.Search("transient"))
	})

	t.Run("list", func(t *testing.T) {
		infos, err := engine.Snapshots(ctx)
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, DefaultSnapshotName, infos[0].Name)
	})

	t.Run("restore missing", func(t *testing.T) {
		assert.ErrorIs(t, engine.Restore(ctx, "absent"), storage.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, engine.DeleteSnapshot(ctx, DefaultSnapshotName))
		infos, err := engine.Snapshots(ctx)
		require.NoError(t, err)
		assert.Empty(t, infos)
	})
}
