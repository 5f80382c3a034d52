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

// Hand-written mus format serializers for the persisted domain types.

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

var (
	// DocumentIDMUS serializes DocumentID values.
	DocumentIDMUS = documentIDMUS{}
	// DocumentMUS serializes Document values.
	DocumentMUS = documentMUS{}
	// PostingMUS serializes Posting values.
	PostingMUS = postingMUS{}

	stringSliceMUS = ord.NewSliceSer[string](ord.String)
	intSliceMUS    = ord.NewSliceSer[int](varint.Int)

	// PostingListMUS serializes one term's full postings list.
	PostingListMUS = ord.NewSliceSer[Posting](PostingMUS)
	// DocumentIDSliceMUS serializes a tag's document id set.
	DocumentIDSliceMUS = ord.NewSliceSer[DocumentID](DocumentIDMUS)

	// DocumentMapMUS serializes the document store.
	DocumentMapMUS = ord.NewMapSer[DocumentID, Document](DocumentIDMUS, DocumentMUS)
	// PostingsMapMUS serializes the term postings index.
	PostingsMapMUS = ord.NewMapSer[string, []Posting](ord.String, PostingListMUS)
	// TagMapMUS serializes the tag index.
	TagMapMUS = ord.NewMapSer[string, []DocumentID](ord.String, DocumentIDSliceMUS)
)

var (
	_ mus.Serializer[DocumentID] = DocumentIDMUS
	_ mus.Serializer[Document]   = DocumentMUS
	_ mus.Serializer[Posting]    = PostingMUS
)

type documentIDMUS struct{}

func (documentIDMUS) Marshal(id DocumentID, bs []byte) (n int) {
	return varint.Uint32.Marshal(uint32(id), bs)
}

func (documentIDMUS) Unmarshal(bs []byte) (id DocumentID, n int, err error) {
	v, n, err := varint.Uint32.Unmarshal(bs)
	return DocumentID(v), n, err
}

func (documentIDMUS) Size(id DocumentID) (size int) {
	return varint.Uint32.Size(uint32(id))
}

func (documentIDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint32.Skip(bs)
}

type documentMUS struct{}

func (documentMUS) Marshal(d Document, bs []byte) (n int) {
	n = DocumentIDMUS.Marshal(d.ID, bs)
	n += ord.String.Marshal(d.Path, bs[n:])
	n += ord.String.Marshal(d.Content, bs[n:])
	n += ord.String.Marshal(d.Title, bs[n:])
	n += stringSliceMUS.Marshal(d.Tags, bs[n:])
	n += varint.Int.Marshal(d.TokenCount, bs[n:])
	n += varint.Int64.Marshal(d.ModTime, bs[n:])
	return n
}

func (documentMUS) Unmarshal(bs []byte) (d Document, n int, err error) {
	var n1 int
	d.ID, n, err = DocumentIDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	d.Path, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.Tags, n1, err = stringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.TokenCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	d.ModTime, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	return
}

func (documentMUS) Size(d Document) (size int) {
	size = DocumentIDMUS.Size(d.ID)
	size += ord.String.Size(d.Path)
	size += ord.String.Size(d.Content)
	size += ord.String.Size(d.Title)
	size += stringSliceMUS.Size(d.Tags)
	size += varint.Int.Size(d.TokenCount)
	size += varint.Int64.Size(d.ModTime)
	return size
}

func (documentMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = DocumentIDMUS.Skip(bs)
	if err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = stringSliceMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	return
}

type postingMUS struct{}

func (postingMUS) Marshal(p Posting, bs []byte) (n int) {
	n = DocumentIDMUS.Marshal(p.DocID, bs)
	n += intSliceMUS.Marshal(p.Positions, bs[n:])
	return n
}

func (postingMUS) Unmarshal(bs []byte) (p Posting, n int, err error) {
	var n1 int
	p.DocID, n, err = DocumentIDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	p.Positions, n1, err = intSliceMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (postingMUS) Size(p Posting) (size int) {
	return DocumentIDMUS.Size(p.DocID) + intSliceMUS.Size(p.Positions)
}

func (postingMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = DocumentIDMUS.Skip(bs)
	if err != nil {
		return
	}
	n1, err = intSliceMUS.Skip(bs[n:])
	n += n1
	return
}
