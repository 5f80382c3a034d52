package extract

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// PDF extracts the embedded text layer of a PDF file.
type PDF struct{}

var _ Extractor = PDF{}

// Extract returns the plain text of all pages in document order.
func (PDF) Extract(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(text); err != nil {
		return "", err
	}
	return buf.String(), nil
}
