package index

import (
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/loupe-search/loupe/core"
)

// BM25 defaults.
const (
	defaultK1 = 1.2
	defaultB  = 0.75
)

const defaultCacheCapacity = 100

// Index is an inverted index over a corpus of extracted documents.
type Index struct {
	docs     map[core.DocumentID]core.Document
	postings map[string][]core.Posting
	tags     map[string][]core.DocumentID

	totalDocs int
	avgDocLen float64

	nextDocID atomic.Uint32

	tokenizer core.Tokenizer
	cache     *resultCache
	cacheCap  int
	poolSize  int
	k1, b     float64
	logger    *slog.Logger
}

// Option configures an Index.
type Option func(*Index) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(idx *Index) error {
		if logger == nil {
			logger = slog.Default()
		}
		idx.logger = logger
		return nil
	}
}

// WithCacheCapacity sets the search cache capacity.
// Default is 100 entries.
func WithCacheCapacity(capacity int) Option {
	return func(idx *Index) error {
		if capacity < 1 {
			return ErrInvalidCacheCapacity
		}
		idx.cacheCap = capacity
		return nil
	}
}

// WithPoolSize sets the worker pool size for parallel content extraction
// during directory synchronization.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(idx *Index) error {
		if size < 1 {
			size = 1
		}
		idx.poolSize = size
		return nil
	}
}

// WithBM25Parameters overrides the BM25 k1 and b parameters.
// Defaults are k1=1.2, b=0.75.
func WithBM25Parameters(k1, b float64) Option {
	return func(idx *Index) error {
		idx.k1 = k1
		idx.b = b
		return nil
	}
}

// New creates an empty index using the given tokenizer.
func New(tokenizer core.Tokenizer, opts ...Option) (*Index, error) {
	if tokenizer == nil {
		return nil, ErrTokenizerRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	idx := &Index{
		docs:      make(map[core.DocumentID]core.Document),
		postings:  make(map[string][]core.Posting),
		tags:      make(map[string][]core.DocumentID),
		tokenizer: tokenizer,
		cacheCap:  defaultCacheCapacity,
		poolSize:  poolSize,
		k1:        defaultK1,
		b:         defaultB,
		logger:    slog.Default(),
	}
	idx.nextDocID.Store(1)

	for _, opt := range opts {
		if err := opt(idx); err != nil {
			return nil, err
		}
	}

	cache, err := newResultCache(idx.cacheCap)
	if err != nil {
		return nil, err
	}
	idx.cache = cache

	return idx, nil
}

// TotalDocuments returns the number of documents in the corpus.
func (idx *Index) TotalDocuments() int {
	return idx.totalDocs
}

// AverageDocumentLength returns the mean token count across the corpus.
func (idx *Index) AverageDocumentLength() float64 {
	return idx.avgDocLen
}

// GetDocument returns the document with the given id, if present.
func (idx *Index) GetDocument(id core.DocumentID) (core.Document, bool) {
	doc, ok := idx.docs[id]
	return doc, ok
}

// newDocID atomically assigns the next document identifier.
// Safe to call from parallel extraction workers.
func (idx *Index) newDocID() core.DocumentID {
	return core.DocumentID(idx.nextDocID.Add(1) - 1)
}

// recomputeAggregates rebuilds the corpus-wide counters from scratch.
// Called after every corpus mutation; aggregates never drift incrementally.
func (idx *Index) recomputeAggregates() {
	idx.totalDocs = len(idx.docs)
	if idx.totalDocs == 0 {
		idx.avgDocLen = 0
		return
	}
	total := 0
	for _, doc := range idx.docs {
		total += doc.TokenCount
	}
	idx.avgDocLen = float64(total) / float64(idx.totalDocs)
}

// finishMutation restores the index invariants after structural changes:
// aggregates are recomputed and the search cache is invalidated.
func (idx *Index) finishMutation() {
	idx.recomputeAggregates()
	idx.cache.purge()
}
