package index

import (
	"math"

	"github.com/loupe-search/loupe/core"
)

// resolvedTerm is a query term after exact or fuzzy resolution.
type resolvedTerm struct {
	text  string
	fuzzy bool
}

// searchKeyword executes an AND query over the resolved terms and ranks
// the surviving documents with BM25.
//
// Resolution policy: a term with no postings entry falls back to fuzzy
// matching unless it came from a wildcard expansion. Terms that still
// resolve to nothing are dropped from both the AND filter and scoring;
// if no term resolves at all, the query returns no results.
func (idx *Index) searchKeyword(q KeywordQuery, monitor Monitor) []core.SearchResult {
	resolved := idx.resolveTerms(q.Terms, monitor)
	if len(resolved) == 0 {
		return nil
	}

	candidates := idx.intersectCandidates(resolved)
	if len(candidates) == 0 {
		return nil
	}

	results := make([]core.SearchResult, 0, len(candidates))
	highlight := highlightTerms(resolved)
	for _, id := range candidates {
		doc := idx.docs[id]
		results = append(results, core.SearchResult{
			Doc:     doc,
			Score:   idx.scoreBM25(doc, resolved),
			Snippet: idx.makeSnippet(doc.Content, highlight, highlight),
		})
	}
	sortResults(results)
	return results
}

// resolveTerms substitutes fuzzy matches for unknown terms and drops
// what cannot be resolved.
func (idx *Index) resolveTerms(terms []Term, monitor Monitor) []resolvedTerm {
	resolved := make([]resolvedTerm, 0, len(terms))
	for _, term := range terms {
		if _, ok := idx.postings[term.Text]; ok {
			resolved = append(resolved, resolvedTerm{text: term.Text})
			continue
		}
		if term.Wildcard {
			// Wildcard expansions come from the indexed vocabulary;
			// an absent one means the corpus mutated mid-query.
			continue
		}
		match, distance, ok := idx.fuzzyMatch(term.Text)
		if !ok {
			idx.logger.Debug("no exact or fuzzy match for term", "term", term.Text)
			monitor.TermUnresolved(term.Text)
			continue
		}
		idx.logger.Debug("fuzzy matched term",
			"term", term.Text, "resolved", match, "distance", distance)
		monitor.FuzzyResolved(term.Text, match, distance)
		resolved = append(resolved, resolvedTerm{text: match, fuzzy: true})
	}
	return resolved
}

// intersectCandidates returns ids of documents whose postings contain
// every resolved term.
func (idx *Index) intersectCandidates(resolved []resolvedTerm) []core.DocumentID {
	counts := make(map[core.DocumentID]int)
	seen := make(map[core.DocumentID]map[string]bool)
	for _, term := range resolved {
		for _, posting := range idx.postings[term.text] {
			terms := seen[posting.DocID]
			if terms == nil {
				terms = make(map[string]bool)
				seen[posting.DocID] = terms
			}
			// Duplicate resolved terms must not double-count a document.
			if terms[term.text] {
				continue
			}
			terms[term.text] = true
			counts[posting.DocID]++
		}
	}

	required := make(map[string]bool, len(resolved))
	for _, term := range resolved {
		required[term.text] = true
	}

	var ids []core.DocumentID
	for id, n := range counts {
		if n == len(required) {
			ids = append(ids, id)
		}
	}
	return ids
}

// scoreBM25 sums the BM25 contribution of every resolved term for one
// document. Fuzzy-resolved terms are penalized by halving their
// contribution.
func (idx *Index) scoreBM25(doc core.Document, resolved []resolvedTerm) float64 {
	avgdl := idx.avgDocLen
	if avgdl < 1.0 {
		avgdl = 1.0
	}
	n := float64(idx.totalDocs)
	docLen := float64(doc.TokenCount)

	var score float64
	for _, term := range resolved {
		tf := float64(idx.termFrequency(term.text, doc.ID))
		if tf == 0 {
			continue
		}
		df := float64(idx.documentFrequency(term.text))
		idf := math.Log10((n-df+0.5)/(df+0.5) + 1)
		tfComp := (tf * (idx.k1 + 1)) / (tf + idx.k1*(1-idx.b+idx.b*(docLen/avgdl)))

		contribution := idf * tfComp
		if term.fuzzy {
			contribution *= 0.5
		}
		score += contribution
	}
	return score
}

// termFrequency derives a term's frequency in a document from the length
// of its position list; no separate frequency field is kept.
func (idx *Index) termFrequency(term string, id core.DocumentID) int {
	for _, posting := range idx.postings[term] {
		if posting.DocID == id {
			return len(posting.Positions)
		}
	}
	return 0
}

// highlightTerms lists the unique resolved terms for snippet emphasis.
func highlightTerms(resolved []resolvedTerm) []string {
	seen := make(map[string]bool, len(resolved))
	terms := make([]string, 0, len(resolved))
	for _, term := range resolved {
		if seen[term.text] {
			continue
		}
		seen[term.text] = true
		terms = append(terms, term.text)
	}
	return terms
}
