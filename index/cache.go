package index

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/loupe-search/loupe/core"
)

// resultCache memoizes fully ranked result sets keyed by the raw query
// string. The underlying LRU synchronizes lookups and inserts internally,
// so the critical section never spans a search computation. Cached slices
// are copied on both insert and lookup; results are otherwise read-only.
type resultCache struct {
	lru *lru.Cache[string, []core.SearchResult]
}

func newResultCache(capacity int) (*resultCache, error) {
	if capacity < 1 {
		return nil, ErrInvalidCacheCapacity
	}
	inner, err := lru.New[string, []core.SearchResult](capacity)
	if err != nil {
		return nil, err
	}
	return &resultCache{lru: inner}, nil
}

func (c *resultCache) get(query string) ([]core.SearchResult, bool) {
	results, ok := c.lru.Get(query)
	if !ok {
		return nil, false
	}
	return cloneResults(results), true
}

func (c *resultCache) put(query string, results []core.SearchResult) {
	c.lru.Add(query, cloneResults(results))
}

func (c *resultCache) purge() {
	c.lru.Purge()
}

func (c *resultCache) len() int {
	return c.lru.Len()
}

func cloneResults(results []core.SearchResult) []core.SearchResult {
	if results == nil {
		return nil
	}
	cloned := make([]core.SearchResult, len(results))
	copy(cloned, results)
	return cloned
}
