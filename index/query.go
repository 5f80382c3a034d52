package index

import (
	"sort"
	"strings"
	"unicode"
)

// Query is the classified form of a raw query string.
// Exactly one of TagQuery, PhraseQuery, or KeywordQuery is produced;
// queries that classify to nothing searchable yield an emptyQuery.
type Query interface {
	isQuery()
}

// TagQuery looks up documents by an exact normalized tag.
type TagQuery struct {
	Tag string
}

// PhraseQuery matches consecutive token positions for a quoted phrase.
type PhraseQuery struct {
	Raw   string   // quoted interior, as typed
	Terms []string // stemmed token sequence
}

// KeywordQuery ranks documents containing all of its terms.
type KeywordQuery struct {
	Terms []Term
}

// Term is a single keyword search term.
type Term struct {
	Text     string
	Wildcard bool // expanded from a trailing-* prefix; never fuzzy-resolved
}

type emptyQuery struct{}

func (TagQuery) isQuery()     {}
func (PhraseQuery) isQuery()  {}
func (KeywordQuery) isQuery() {}
func (emptyQuery) isQuery()   {}

// classify parses a raw query into its search mode, first match wins:
// leading '#' is a tag lookup, a fully quoted string is a phrase, anything
// else is a keyword set. Wildcard words (trailing '*') expand against the
// indexed vocabulary here, so the expansion reflects the current corpus.
func (idx *Index) classify(raw string, monitor Monitor) Query {
	if strings.HasPrefix(raw, "#") {
		tag := strings.ToLower(strings.TrimSpace(raw[1:]))
		if tag == "" {
			return emptyQuery{}
		}
		return TagQuery{Tag: tag}
	}

	if strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) && len(raw) > 1 {
		interior := raw[1 : len(raw)-1]
		tokens := idx.tokenizer.Tokenize(interior)
		if len(tokens) == 0 {
			return emptyQuery{}
		}
		terms := make([]string, len(tokens))
		for i, tok := range tokens {
			terms[i] = tok.Term
		}
		return PhraseQuery{Raw: interior, Terms: terms}
	}

	var terms []Term
	for _, word := range strings.Fields(strings.ToLower(raw)) {
		word = strings.TrimRightFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '*'
		})

		if strings.HasSuffix(word, "*") && len(word) > 1 {
			terms = append(terms, idx.expandWildcard(word[:len(word)-1], monitor)...)
			continue
		}

		for _, tok := range idx.tokenizer.Tokenize(word) {
			terms = append(terms, Term{Text: tok.Term})
		}
	}

	if len(terms) == 0 {
		return emptyQuery{}
	}
	return KeywordQuery{Terms: terms}
}

// expandWildcard stems the prefix and collects every indexed term starting
// with it, in lexicographic order so ranking input is deterministic.
func (idx *Index) expandWildcard(prefix string, monitor Monitor) []Term {
	var expanded []string
	for _, tok := range idx.tokenizer.Tokenize(prefix) {
		for term := range idx.postings {
			if strings.HasPrefix(term, tok.Term) {
				expanded = append(expanded, term)
			}
		}
	}
	sort.Strings(expanded)
	monitor.WildcardExpanded(prefix, expanded)

	if len(expanded) == 0 {
		idx.logger.Debug("no terms found for wildcard prefix", "prefix", prefix)
		return nil
	}

	terms := make([]Term, len(expanded))
	for i, term := range expanded {
		terms[i] = Term{Text: term, Wildcard: true}
	}
	return terms
}
