package index

import (
	"strings"

	"github.com/loupe-search/loupe/core"
)

// searchPhrase ranks documents by the number of exact positional
// alignments of the phrase's stemmed token sequence.
//
// All phrase tokens must appear in a document at all (set intersection);
// each occurrence of the first token then anchors an alignment check
// requiring token i at position p+i. Any phrase token absent from the
// index short-circuits to zero results.
func (idx *Index) searchPhrase(q PhraseQuery) []core.SearchResult {
	common := make(map[core.DocumentID]map[string][]int)

	for i, term := range q.Terms {
		entries, ok := idx.termPostings(term)
		if !ok {
			return nil
		}

		if i == 0 {
			for _, posting := range entries {
				common[posting.DocID] = map[string][]int{term: posting.Positions}
			}
			continue
		}

		withTerm := make(map[core.DocumentID][]int, len(entries))
		for _, posting := range entries {
			withTerm[posting.DocID] = posting.Positions
		}
		for id, positionsByTerm := range common {
			positions, ok := withTerm[id]
			if !ok {
				delete(common, id)
				continue
			}
			positionsByTerm[term] = positions
		}
	}

	results := make([]core.SearchResult, 0, len(common))
	for id, positionsByTerm := range common {
		matches := countAlignments(q.Terms, positionsByTerm)
		if matches == 0 {
			continue
		}
		doc := idx.docs[id]
		results = append(results, core.SearchResult{
			Doc:     doc,
			Score:   float64(matches),
			Snippet: idx.makeSnippet(doc.Content, []string{strings.ToLower(q.Raw)}, q.Terms),
		})
	}
	sortResults(results)
	return results
}

// countAlignments counts occurrences of the first phrase token from which
// every following token appears at the expected consecutive position.
func countAlignments(terms []string, positionsByTerm map[string][]int) int {
	matches := 0
	for _, start := range positionsByTerm[terms[0]] {
		aligned := true
		for i := 1; i < len(terms); i++ {
			if !containsPosition(positionsByTerm[terms[i]], start+i) {
				aligned = false
				break
			}
		}
		if aligned {
			matches++
		}
	}
	return matches
}

func containsPosition(positions []int, want int) bool {
	for _, p := range positions {
		if p == want {
			return true
		}
	}
	return false
}
