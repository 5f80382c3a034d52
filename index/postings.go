package index

import (
	"github.com/loupe-search/loupe/core"
)

// partialPostings groups a document's token stream by term.
// The returned map is the document's contribution to the postings index;
// the int is the emitted token count.
func partialPostings(tokens []core.Token) (map[string][]int, int) {
	partial := make(map[string][]int)
	for _, tok := range tokens {
		partial[tok.Term] = append(partial[tok.Term], tok.Position)
	}
	return partial, len(tokens)
}

// indexPostings appends the document's positions to every affected term.
// A document id appears at most once per term's postings list.
func (idx *Index) indexPostings(id core.DocumentID, partial map[string][]int) {
	for term, positions := range partial {
		idx.postings[term] = append(idx.postings[term], core.Posting{
			DocID:     id,
			Positions: positions,
		})
	}
}

// deindexPostings removes the document from every affected term's postings
// list, dropping terms whose lists become empty.
func (idx *Index) deindexPostings(id core.DocumentID, partial map[string][]int) {
	for term := range partial {
		entries := idx.postings[term]
		for i, p := range entries {
			if p.DocID == id {
				idx.postings[term] = append(entries[:i], entries[i+1:]...)
				break
			}
		}
		if len(idx.postings[term]) == 0 {
			delete(idx.postings, term)
		}
	}
}

// termPostings returns the postings list for a term.
func (idx *Index) termPostings(term string) ([]core.Posting, bool) {
	entries, ok := idx.postings[term]
	return entries, ok
}

// documentFrequency returns the number of documents containing the term.
func (idx *Index) documentFrequency(term string) int {
	return len(idx.postings[term])
}
