package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-search/loupe/core"
	"github.com/loupe-search/loupe/tokenizer"
)

func newTestIndex(t *testing.T, opts ...Option) *Index {
	t.Helper()
	idx, err := New(tokenizer.New(), opts...)
	require.NoError(t, err)
	return idx
}

func addDoc(t *testing.T, idx *Index, path, content string) core.DocumentID {
	t.Helper()
	id, err := idx.AddDocument(core.Document{Path: path, Content: content, Title: path})
	require.NoError(t, err)
	return id
}

func TestNew(t *testing.T) {
	t.Run("nil tokenizer", func(t *testing.T) {
		_, err := New(nil)
		assert.Equal(t, ErrTokenizerRequired, err)
	})

	t.Run("invalid cache capacity", func(t *testing.T) {
		_, err := New(tokenizer.New(), WithCacheCapacity(0))
		assert.Equal(t, ErrInvalidCacheCapacity, err)
	})

	t.Run("defaults", func(t *testing.T) {
		idx := newTestIndex(t)
		assert.Equal(t, 0, idx.TotalDocuments())
		assert.Equal(t, defaultCacheCapacity, idx.cacheCap)
	})
}

func TestAddDocument(t *testing.T) {
	idx := newTestIndex(t)

	id := addDoc(t, idx, "a.txt", "the linux kernel schedules processes #systems")

	t.Run("assigns monotonic ids", func(t *testing.T) {
		assert.Equal(t, core.DocumentID(1), id)
		second := addDoc(t, idx, "b.txt", "another document")
		assert.Equal(t, core.DocumentID(2), second)
	})

	t.Run("derives tags and token count", func(t *testing.T) {
		doc, ok := idx.GetDocument(id)
		require.True(t, ok)
		assert.Equal(t, []string{"systems"}, doc.Tags)
		assert.Greater(t, doc.TokenCount, 0)
	})

	t.Run("populates postings", func(t *testing.T) {
		entries, ok := idx.termPostings("linux")
		require.True(t, ok)
		require.Len(t, entries, 1)
		assert.Equal(t, id, entries[0].DocID)
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		_, err := idx.AddDocument(core.Document{Content: "no path"})
		assert.ErrorIs(t, err, core.ErrInvalidDocument)
	})
}

func TestRemoveDocumentLeavesNoTrace(t *testing.T) {
	idx := newTestIndex(t)

	keep := addDoc(t, idx, "keep.txt", "linux kernel #shared")
	gone := addDoc(t, idx, "gone.txt", "quantum entanglement #shared #solo")

	removed, ok := idx.RemoveDocument(gone)
	require.True(t, ok)
	assert.Equal(t, "gone.txt", removed.Path)

	t.Run("postings hold no reference", func(t *testing.T) {
		for term, entries := range idx.postings {
			for _, p := range entries {
				assert.NotEqual(t, gone, p.DocID, "term %q still references removed doc", term)
			}
		}
	})

	t.Run("terms introduced solely by the doc are dropped", func(t *testing.T) {
		_, ok := idx.termPostings("quantum")
		assert.False(t, ok)
	})

	t.Run("tag entries shrink or disappear", func(t *testing.T) {
		assert.Equal(t, []core.DocumentID{keep}, idx.taggedDocuments("shared"))
		assert.Empty(t, idx.taggedDocuments("solo"))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := idx.RemoveDocument(999)
		assert.False(t, ok)
	})

	t.Run("aggregates recomputed", func(t *testing.T) {
		assert.Equal(t, 1, idx.TotalDocuments())
	})
}

func TestAggregatesNeverDrift(t *testing.T) {
	idx := newTestIndex(t)

	a := addDoc(t, idx, "a.txt", "alpha beta gamma delta")
	addDoc(t, idx, "b.txt", "alpha beta")

	docA, _ := idx.GetDocument(a)
	require.Equal(t, 4, docA.TokenCount)
	assert.InDelta(t, 3.0, idx.AverageDocumentLength(), 1e-9)

	idx.RemoveDocument(a)
	assert.InDelta(t, 2.0, idx.AverageDocumentLength(), 1e-9)

	idx.RemoveDocument(core.DocumentID(2))
	assert.Zero(t, idx.AverageDocumentLength())
	assert.Zero(t, idx.TotalDocuments())
}

func TestRebuildPreservesIDs(t *testing.T) {
	idx := newTestIndex(t)

	id := addDoc(t, idx, "a.txt", "searchable content #tagged")
	idx.Rebuild()

	doc, ok := idx.GetDocument(id)
	require.True(t, ok)
	assert.Equal(t, []string{"tagged"}, doc.Tags)

	results := idx.Search("searchable")
	require.Len(t, results, 1)
	assert.Equal(t, id, results[0].Doc.ID)
}

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"none", "plain text without tags", nil},
		{"single", "notes about #Go runtime", []string{"go"}},
		{"multiple and duplicate", "#a then #b then #A again", []string{"a", "b"}},
		{"word characters only", "#with-dash stops at the dash", []string{"with"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTags(tt.content))
		})
	}
}
