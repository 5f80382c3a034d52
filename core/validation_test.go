package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid document",
			doc:  &Document{Path: "corpus/a.txt", Content: "hello", TokenCount: 1},
		},
		{
			name: "valid document with empty content",
			doc:  &Document{Path: "corpus/empty.txt"},
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "empty path",
			doc:     &Document{Content: "hello"},
			wantErr: ErrEmptyPath,
		},
		{
			name:    "negative mod time",
			doc:     &Document{Path: "a.txt", ModTime: -1},
			wantErr: ErrInvalidModTime,
		},
		{
			name:    "negative token count",
			doc:     &Document{Path: "a.txt", TokenCount: -3},
			wantErr: ErrNegativeTokenCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
