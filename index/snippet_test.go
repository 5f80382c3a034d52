package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSnippet(t *testing.T) {
	idx := newTestIndex(t)

	t.Run("window surrounds the first match", func(t *testing.T) {
		content := strings.Repeat("x", 200) + " kernel " + strings.Repeat("y", 200)
		snippet := idx.makeSnippet(content, []string{"kernel"}, []string{"kernel"})
		assert.True(t, strings.HasPrefix(snippet, "..."))
		assert.True(t, strings.HasSuffix(snippet, "..."))
		assert.Contains(t, snippet, HighlightOpen+"kernel"+HighlightClose)
		// 50 runes each side plus the match, markers and ellipses.
		assert.LessOrEqual(t, len(snippet), 50+len("kernel")+50+10)
	})

	t.Run("match is case insensitive", func(t *testing.T) {
		snippet := idx.makeSnippet("The Kernel boots.", []string{"kernel"}, []string{"kernel"})
		assert.Contains(t, snippet, HighlightOpen+"Kernel"+HighlightClose)
	})

	t.Run("window clamps at content bounds", func(t *testing.T) {
		snippet := idx.makeSnippet("kernel at the start", []string{"kernel"}, nil)
		assert.Equal(t, "...kernel at the start...", snippet)
	})

	t.Run("first locate string wins", func(t *testing.T) {
		snippet := idx.makeSnippet("alpha then beta", []string{"beta", "alpha"}, nil)
		assert.Contains(t, snippet, "beta")
	})

	t.Run("no match falls back to the prefix", func(t *testing.T) {
		long := strings.Repeat("a", 300)
		snippet := idx.makeSnippet(long, []string{"missing"}, nil)
		assert.Equal(t, strings.Repeat("a", 150)+"...", snippet)
		assert.NotContains(t, snippet, HighlightOpen+"a")
	})

	t.Run("short content returned whole on fallback", func(t *testing.T) {
		snippet := idx.makeSnippet("tiny", []string{"missing"}, nil)
		assert.Equal(t, "tiny...", snippet)
	})

	t.Run("case folding that grows byte length", func(t *testing.T) {
		// Ⱥ (2 bytes) lowercases to ⱥ (3 bytes), so folded offsets run
		// past the original content length.
		content := strings.Repeat("Ⱥ", 200) + " kernel tail"
		snippet := idx.makeSnippet(content, []string{"kernel"}, []string{"kernel"})
		assert.Contains(t, snippet, HighlightOpen+"kernel"+HighlightClose)
	})

	t.Run("case folding that shrinks byte length", func(t *testing.T) {
		// İ (2 bytes) lowercases to i (1 byte); the window must still
		// land on the match in the original string.
		content := strings.Repeat("İ", 100) + " kernel tail"
		snippet := idx.makeSnippet(content, []string{"kernel"}, []string{"kernel"})
		assert.Contains(t, snippet, HighlightOpen+"kernel"+HighlightClose)
	})

	t.Run("multibyte content does not split runes", func(t *testing.T) {
		content := strings.Repeat("é", 80) + " kernel " + strings.Repeat("û", 80)
		snippet := idx.makeSnippet(content, []string{"kernel"}, nil)
		assert.True(t, utf8Valid(snippet))
		assert.Contains(t, snippet, "kernel")
	})

	t.Run("every occurrence inside the window is emphasized", func(t *testing.T) {
		snippet := idx.makeSnippet("go run go test go vet", []string{"go"}, []string{"go"})
		assert.Equal(t, 3, strings.Count(snippet, HighlightOpen+"go"+HighlightClose))
	})
}

func TestEmphasize(t *testing.T) {
	t.Run("word boundaries respected", func(t *testing.T) {
		out := emphasize("cat concatenate cat", "cat")
		assert.Equal(t, "**cat** concatenate **cat**", out)
	})

	t.Run("regex metacharacters are quoted", func(t *testing.T) {
		// An unquoted "a+b" would match "aab"; the literal must not.
		assert.Equal(t, "aab", emphasize("aab", "a+b"))
		assert.Equal(t, "**a+b**", emphasize("a+b", "a+b"))
	})

	t.Run("empty term is a no-op", func(t *testing.T) {
		assert.Equal(t, "text", emphasize("text", ""))
	})
}

func utf8Valid(s string) bool {
	for _, r := range s {
		if r == '�' {
			return false
		}
	}
	return true
}
