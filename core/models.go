package core

// DocumentID is a unique identifier for indexed documents.
// IDs are assigned monotonically and never reused.
type DocumentID uint32

// Document is a single indexed source file after content extraction.
type Document struct {
	ID         DocumentID
	Path       string   // Source path, unique key for corpus synchronization
	Content    string   // Extracted plain-text content
	Title      string   // File stem
	Tags       []string // Lowercased #tags found in the content
	TokenCount int      // Number of non-stopword tokens, used by BM25 length normalization
	ModTime    int64    // Source file modification time, seconds since epoch
}

// Token is a normalized term with its position in a document's token stream.
// Positions count only emitted (non-stopword) tokens.
type Token struct {
	Term     string
	Position int
}

// Tokenizer converts text into an ordered sequence of normalized tokens.
// Implementations must be deterministic for identical input.
type Tokenizer interface {
	Tokenize(text string) []Token
}

// Posting records where a term appears in one document.
type Posting struct {
	DocID     DocumentID
	Positions []int
}

// SearchResult is a ranked, snippet-annotated search hit.
type SearchResult struct {
	Doc     Document
	Score   float64
	Snippet string
}
