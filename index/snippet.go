package index

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// snippetWindow is the number of characters kept on each side of the
	// first match.
	snippetWindow = 50
	// snippetFallback is the prefix length used when nothing matches.
	snippetFallback = 150
)

// Emphasis markers wrapped around highlighted terms in snippets.
// The CLI rewrites them into terminal styling.
const (
	HighlightOpen  = "**"
	HighlightClose = "**"
)

// makeSnippet extracts a context window around the first case-insensitive
// occurrence of any locate string and emphasizes every occurrence of the
// highlight terms inside it. With no match the leading snippetFallback
// characters are returned unhighlighted.
func (idx *Index) makeSnippet(content string, locate, highlight []string) string {
	// Lowercasing can change byte length, so offsets found in the folded
	// text must be mapped back before slicing content.
	lower, offsets := foldContent(content)

	matchIdx, matchLen := -1, 0
	for _, target := range locate {
		if target == "" {
			continue
		}
		if i := strings.Index(lower, target); i >= 0 {
			matchIdx, matchLen = i, len(target)
			break
		}
	}

	if matchIdx < 0 {
		if utf8.RuneCountInString(content) <= snippetFallback {
			return content + "..."
		}
		runes := []rune(content)
		return string(runes[:snippetFallback]) + "..."
	}

	start := backwardRunes(content, offsets[matchIdx], snippetWindow)
	end := forwardRunes(content, offsets[matchIdx+matchLen], snippetWindow)
	window := content[start:end]

	for _, term := range highlight {
		window = emphasize(window, term)
	}
	return "..." + window + "..."
}

// emphasize wraps word-boundary, case-insensitive occurrences of term in
// the highlight markers.
func emphasize(text, term string) string {
	if term == "" {
		return text
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	if err != nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, func(match string) string {
		return HighlightOpen + match + HighlightClose
	})
}

// foldContent lowercases content rune-by-rune and records, for every
// byte of the folded form plus the end position, the byte offset of its
// source rune in content. A match at folded byte i starts at content
// byte offsets[i].
func foldContent(content string) (string, []int) {
	var b strings.Builder
	b.Grow(len(content))
	offsets := make([]int, 0, len(content)+1)
	for i, r := range content {
		lr := unicode.ToLower(r)
		for j := 0; j < utf8.RuneLen(lr); j++ {
			offsets = append(offsets, i)
		}
		b.WriteRune(lr)
	}
	offsets = append(offsets, len(content))
	return b.String(), offsets
}

// backwardRunes steps back up to n runes from the byte offset, clamped to
// the start of the string.
func backwardRunes(s string, offset, n int) int {
	for i := 0; i < n && offset > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:offset])
		offset -= size
	}
	return offset
}

// forwardRunes steps forward up to n runes from the byte offset, clamped
// to the end of the string.
func forwardRunes(s string, offset, n int) int {
	if offset > len(s) {
		return len(s)
	}
	for i := 0; i < n && offset < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return offset
}
