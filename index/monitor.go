package index

import "github.com/loupe-search/loupe/core"

// Monitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps during a search.
type Monitor interface {
	Start(query string)
	CacheHit(query string)
	Classified(query Query)
	WildcardExpanded(prefix string, terms []string)
	FuzzyResolved(term, resolved string, distance int)
	TermUnresolved(term string)
	Finish(results []core.SearchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                        {}
func (n *noopMonitor) CacheHit(_ string)                     {}
func (n *noopMonitor) Classified(_ Query)                    {}
func (n *noopMonitor) WildcardExpanded(_ string, _ []string) {}
func (n *noopMonitor) FuzzyResolved(_, _ string, _ int)      {}
func (n *noopMonitor) TermUnresolved(_ string)               {}
func (n *noopMonitor) Finish(_ []core.SearchResult)          {}
