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
	"fmt"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// snapshotInfoSer implements mus.Serializer for SnapshotInfo.
type snapshotInfoSer struct{}

// SnapshotInfoMUS serializes SnapshotInfo metadata records.
var SnapshotInfoMUS = snapshotInfoSer{}

var _ mus.Serializer[SnapshotInfo] = snapshotInfoSer{}

func (snapshotInfoSer) Marshal(info SnapshotInfo, bs []byte) (n int) {
	n = ord.String.Marshal(info.Name, bs)
	n += varint.Int.Marshal(info.Size, bs[n:])
	n += varint.Int64.Marshal(info.SavedAt, bs[n:])
	return n
}

func (snapshotInfoSer) Unmarshal(bs []byte) (info SnapshotInfo, n int, err error) {
	info.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	info.Size, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	info.SavedAt, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	return
}

func (snapshotInfoSer) Size(info SnapshotInfo) (size int) {
	return ord.String.Size(info.Name) +
		varint.Int.Size(info.Size) +
		varint.Int64.Size(info.SavedAt)
}

func (snapshotInfoSer) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	return
}

// MarshalSnapshotInfo serializes a SnapshotInfo to bytes.
func MarshalSnapshotInfo(info SnapshotInfo) []byte {
	buf := make([]byte, SnapshotInfoMUS.Size(info))
	SnapshotInfoMUS.Marshal(info, buf)
	return buf
}

// UnmarshalSnapshotInfo deserializes a SnapshotInfo from bytes.
func UnmarshalSnapshotInfo(data []byte) (SnapshotInfo, error) {
	info, _, err := SnapshotInfoMUS.Unmarshal(data)
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return info, nil
}
