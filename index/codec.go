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
	"bytes"
	"fmt"

	"github.com/go-crypt/x/blake2b"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"

	"github.com/loupe-search/loupe/core"
)

// Blob layout: magic, format version, mus-encoded payload (documents,
// postings, tags, total docs, average document length, cache capacity),
// then a BLAKE2b checksum of the payload. The id counter and the live
// cache are transient: the counter is reseeded from max(ids)+1 and the
// cache is rebuilt empty at the stored capacity.
const (
	blobMagic    = "LOUPEIDX"
	blobVersion  = byte(1)
	checksumSize = 16
)

// Serialize encodes the index into a single binary blob.
func (idx *Index) Serialize() ([]byte, error) {
	payloadSize := core.DocumentMapMUS.Size(idx.docs) +
		core.PostingsMapMUS.Size(idx.postings) +
		core.TagMapMUS.Size(idx.tags) +
		varint.Int.Size(idx.totalDocs) +
		raw.Float64.Size(idx.avgDocLen) +
		varint.Int.Size(idx.cacheCap)

	bs := make([]byte, len(blobMagic)+1+payloadSize+checksumSize)
	n := copy(bs, blobMagic)
	bs[n] = blobVersion
	n++

	payload := bs[n : n+payloadSize]
	p := core.DocumentMapMUS.Marshal(idx.docs, payload)
	p += core.PostingsMapMUS.Marshal(idx.postings, payload[p:])
	p += core.TagMapMUS.Marshal(idx.tags, payload[p:])
	p += varint.Int.Marshal(idx.totalDocs, payload[p:])
	p += raw.Float64.Marshal(idx.avgDocLen, payload[p:])
	p += varint.Int.Marshal(idx.cacheCap, payload[p:])
	if p != payloadSize {
		return nil, fmt.Errorf("%w: encoded %d bytes, expected %d",
			ErrSerializationFailed, p, payloadSize)
	}

	sum, err := checksum(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	copy(bs[n+payloadSize:], sum)

	return bs, nil
}

// Deserialize decodes a blob produced by Serialize into a ready index
// using the given tokenizer. Options apply after the stored settings, so
// a caller may override the logger or pool size but not shrink the cache
// below one entry.
func Deserialize(data []byte, tokenizer core.Tokenizer, opts ...Option) (*Index, error) {
	if tokenizer == nil {
		return nil, ErrTokenizerRequired
	}
	if len(data) < len(blobMagic)+1+checksumSize {
		return nil, fmt.Errorf("%w: blob too short", ErrDeserializationFailed)
	}
	if string(data[:len(blobMagic)]) != blobMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrDeserializationFailed)
	}
	if data[len(blobMagic)] != blobVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d",
			ErrDeserializationFailed, data[len(blobMagic)])
	}

	payload := data[len(blobMagic)+1 : len(data)-checksumSize]
	sum, err := checksum(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserializationFailed, err)
	}
	if !bytes.Equal(sum, data[len(data)-checksumSize:]) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrDeserializationFailed)
	}

	docs, n, err := core.DocumentMapMUS.Unmarshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: documents: %w", ErrDeserializationFailed, err)
	}
	postings, n1, err := core.PostingsMapMUS.Unmarshal(payload[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: postings: %w", ErrDeserializationFailed, err)
	}
	tags, n1, err := core.TagMapMUS.Unmarshal(payload[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: tags: %w", ErrDeserializationFailed, err)
	}
	totalDocs, n1, err := varint.Int.Unmarshal(payload[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: total documents: %w", ErrDeserializationFailed, err)
	}
	avgDocLen, n1, err := raw.Float64.Unmarshal(payload[n:])
	n += n1
	if err != nil {
		return nil, fmt.Errorf("%w: average document length: %w", ErrDeserializationFailed, err)
	}
	cacheCap, _, err := varint.Int.Unmarshal(payload[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: cache capacity: %w", ErrDeserializationFailed, err)
	}
	if cacheCap < 1 {
		return nil, ErrInvalidCacheCapacity
	}

	idx, err := New(tokenizer, append([]Option{WithCacheCapacity(cacheCap)}, opts...)...)
	if err != nil {
		return nil, err
	}
	if docs != nil {
		idx.docs = docs
	}
	if postings != nil {
		idx.postings = postings
	}
	if tags != nil {
		idx.tags = tags
	}
	idx.totalDocs = totalDocs
	idx.avgDocLen = avgDocLen

	var maxID core.DocumentID
	for id := range idx.docs {
		if id > maxID {
			maxID = id
		}
	}
	idx.nextDocID.Store(uint32(maxID) + 1)

	return idx, nil
}

func checksum(payload []byte) ([]byte, error) {
	h, err := blake2b.New(checksumSize, nil)
	if err != nil {
		return nil, err
	}
	h.Write(payload)
	return h.Sum(nil), nil
}
