package extract

import "os"

// PlainText reads a file verbatim. Used for .txt and .md sources.
type PlainText struct{}

var _ Extractor = PlainText{}

// Extract returns the file contents unchanged.
func (PlainText) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
