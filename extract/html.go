package extract

import (
	"os"

	"github.com/PuerkitoBio/goquery"
)

// HTML extracts the text content of a document's <body>.
type HTML struct{}

var _ Extractor = HTML{}

// Extract parses the file as HTML and returns the body text.
// A document without a body yields an empty string, not an error.
func (HTML) Extract(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", err
	}
	return doc.Find("body").Text(), nil
}
