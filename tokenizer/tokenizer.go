package tokenizer

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"

	"github.com/loupe-search/loupe/core"
)

// English stop words dropped before stemming.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "were": true, "to": true, "of": true, "and": true, "or": true,
	"in": true, "that": true, "have": true, "has": true, "had": true,
	"it": true, "its": true, "for": true, "not": true, "on": true,
	"with": true, "as": true, "you": true, "do": true, "at": true,
	"this": true, "but": true, "by": true, "from": true, "they": true,
	"we": true, "his": true, "her": true, "she": true, "he": true,
	"will": true, "would": true, "there": true, "their": true, "what": true,
	"so": true, "if": true, "about": true, "who": true, "which": true,
	"when": true, "can": true, "no": true, "all": true, "been": true,
	"into": true, "than": true, "then": true, "them": true, "these": true,
	"some": true, "your": true, "my": true, "me": true, "i": true,
	"am": true, "us": true, "our": true, "out": true, "up": true,
	"how": true, "more": true, "other": true, "such": true, "only": true,
	"over": true, "also": true, "any": true, "each": true, "most": true,
	"very": true, "after": true, "before": true, "because": true,
	"between": true, "both": true, "during": true, "through": true,
	"under": true, "where": true, "while": true, "why": true,
	"again": true, "against": true, "did": true, "does": true, "doing": true,
	"down": true, "few": true, "further": true, "here": true,
	"off": true, "once": true, "own": true, "same": true, "should": true,
	"too": true, "until": true,
}

// Tokenizer is the default core.Tokenizer implementation.
// The zero value is ready to use.
type Tokenizer struct{}

var _ core.Tokenizer = (*Tokenizer)(nil)

// New creates a new Tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text into stemmed tokens with positional indices.
// Output is deterministic for identical input.
func (t *Tokenizer) Tokenize(text string) []core.Token {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]core.Token, 0, len(words))
	position := 0
	for _, word := range words {
		if stopWords[word] {
			continue
		}
		tokens = append(tokens, core.Token{
			Term:     snowballeng.Stem(word, true),
			Position: position,
		})
		position++
	}
	return tokens
}

// IsStopWord reports whether the lowercased word is filtered by Tokenize.
func IsStopWord(word string) bool {
	return stopWords[strings.ToLower(word)]
}
