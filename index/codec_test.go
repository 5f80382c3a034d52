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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-search/loupe/core"
	"github.com/loupe-search/loupe/tokenizer"
)

func TestSerializeRoundTrip(t *testing.T) {
	idx := newTestIndex(t, WithCacheCapacity(7))
	addDoc(t, idx, "a.txt", "the linux kernel schedules threads #systems")
	b := addDoc(t, idx, "b.txt", "apple orchard history #food")
	idx.RemoveDocument(b)
	addDoc(t, idx, "c.txt", "linux laptops everywhere")

	blob, err := idx.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(blob, tokenizer.New())
	require.NoError(t, err)

	t.Run("state survives", func(t *testing.T) {
		assert.Equal(t, idx.docs, restored.docs)
		assert.Equal(t, idx.postings, restored.postings)
		assert.Equal(t, idx.tags, restored.tags)
		assert.Equal(t, idx.totalDocs, restored.totalDocs)
		assert.InDelta(t, idx.avgDocLen, restored.avgDocLen, 1e-9)
		assert.Equal(t, 7, restored.cacheCap)
	})

	t.Run("id counter reseeded past the max", func(t *testing.T) {
		id, err := restored.AddDocument(core.Document{Path: "d.txt", Content: "fresh"})
		require.NoError(t, err)
		assert.Equal(t, core.DocumentID(4), id)
	})

	t.Run("restored index answers queries", func(t *testing.T) {
		results := restored.Search("linux")
		assert.Len(t, results, 2)
	})

	t.Run("options override after stored settings", func(t *testing.T) {
		again, err := Deserialize(blob, tokenizer.New(), WithCacheCapacity(3))
		require.NoError(t, err)
		assert.Equal(t, 3, again.cacheCap)
	})
}

func TestSerializeEmptyIndex(t *testing.T) {
	idx := newTestIndex(t)

	blob, err := idx.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(blob, tokenizer.New())
	require.NoError(t, err)
	assert.Zero(t, restored.TotalDocuments())

	id, err := restored.AddDocument(core.Document{Path: "first.txt", Content: "hello world"})
	require.NoError(t, err)
	assert.Equal(t, core.DocumentID(1), id)
}

func TestDeserializeRejectsCorruption(t *testing.T) {
	idx := newTestIndex(t)
	addDoc(t, idx, "a.txt", "some indexed content")
	blob, err := idx.Serialize()
	require.NoError(t, err)

	t.Run("nil tokenizer", func(t *testing.T) {
		_, err := Deserialize(blob, nil)
		assert.ErrorIs(t, err, ErrTokenizerRequired)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := Deserialize(blob[:4], tokenizer.New())
		assert.ErrorIs(t, err, ErrDeserializationFailed)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), blob...)
		bad[0] ^= 0xFF
		_, err := Deserialize(bad, tokenizer.New())
		assert.ErrorIs(t, err, ErrDeserializationFailed)
	})

	t.Run("unsupported version", func(t *testing.T) {
		bad := append([]byte(nil), blob...)
		bad[len(blobMagic)] = 99
		_, err := Deserialize(bad, tokenizer.New())
		assert.ErrorIs(t, err, ErrDeserializationFailed)
	})

	t.Run("flipped payload byte fails the checksum", func(t *testing.T) {
		bad := append([]byte(nil), blob...)
		bad[len(blobMagic)+1] ^= 0xFF
		_, err := Deserialize(bad, tokenizer.New())
		require.ErrorIs(t, err, ErrDeserializationFailed)
		assert.ErrorContains(t, err, "checksum")
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := Deserialize(blob[:len(blob)-1], tokenizer.New())
		assert.ErrorIs(t, err, ErrDeserializationFailed)
	})
}

func TestDeserializeRejectsInvalidCacheCapacity(t *testing.T) {
	idx := newTestIndex(t)
	idx.cacheCap = 0

	blob, err := idx.Serialize()
	require.NoError(t, err)

	_, err = Deserialize(blob, tokenizer.New())
	assert.ErrorIs(t, err, ErrInvalidCacheCapacity)
}
