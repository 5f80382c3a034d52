package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Extractor produces plain text from a source file.
type Extractor interface {
	Extract(path string) (string, error)
}

// Registry dispatches extraction by file extension.
type Registry struct {
	byExt map[string]Extractor
}

// NewRegistry creates a registry with the default extractors for
// .txt, .md, .html, and .pdf files.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]Extractor)}
	r.Register("txt", PlainText{})
	r.Register("md", PlainText{})
	r.Register("html", HTML{})
	r.Register("pdf", PDF{})
	return r
}

// Register binds an extractor to an extension (without the leading dot).
// Registering an extension twice replaces the previous extractor.
func (r *Registry) Register(ext string, e Extractor) {
	r.byExt[strings.ToLower(ext)] = e
}

// Extensions returns the registered extensions.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	return exts
}

// Supported reports whether the path's extension has a registered extractor.
func (r *Registry) Supported(path string) bool {
	_, ok := r.byExt[extOf(path)]
	return ok
}

// Extract converts the file at path to plain text.
// Returns ErrUnsupportedFileType for unregistered extensions and wraps
// extractor failures with the offending path.
func (r *Registry) Extract(path string) (string, error) {
	e, ok := r.byExt[extOf(path)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, path)
	}
	text, err := e.Extract(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrExtractionFailed, path, err)
	}
	return text, nil
}

func extOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
