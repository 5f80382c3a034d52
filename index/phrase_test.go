package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPhrase(t *testing.T) {
	idx := newTestIndex(t)
	ml := addDoc(t, idx, "ml.txt", "Machine learning transforms search. Machine learning models improve.")
	reversed := addDoc(t, idx, "rev.txt", "Learning machines was never the point.")
	addDoc(t, idx, "other.txt", "Nothing relevant in here.")

	t.Run("order matters", func(t *testing.T) {
		results := idx.Search(`"machine learning"`)
		require.Len(t, results, 1)
		assert.Equal(t, ml, results[0].Doc.ID)
		// Two aligned occurrences.
		assert.Equal(t, 2.0, results[0].Score)
	})

	t.Run("reversed phrase finds the other document", func(t *testing.T) {
		results := idx.Search(`"learning machines"`)
		require.Len(t, results, 1)
		assert.Equal(t, reversed, results[0].Doc.ID)
	})

	t.Run("stemming folds inflections", func(t *testing.T) {
		// "machines learning" stems to the same terms as "machine learning".
		results := idx.Search(`"machines learning"`)
		require.Len(t, results, 1)
		assert.Equal(t, ml, results[0].Doc.ID)
	})

	t.Run("absent token yields nothing", func(t *testing.T) {
		assert.Empty(t, idx.Search(`"machine warfare"`))
	})

	t.Run("terms present but never adjacent", func(t *testing.T) {
		idx := newTestIndex(t)
		addDoc(t, idx, "gap.txt", "machine heavy industrial learning")
		assert.Empty(t, idx.Search(`"machine learning"`))
	})

	t.Run("single word phrase counts occurrences", func(t *testing.T) {
		results := idx.Search(`"machine"`)
		require.Len(t, results, 2)
		// ml.txt contains the stem twice, rev.txt once.
		assert.Equal(t, ml, results[0].Doc.ID)
		assert.Equal(t, reversed, results[1].Doc.ID)
	})

	t.Run("snippet carries the literal phrase", func(t *testing.T) {
		results := idx.Search(`"machine learning"`)
		require.NotEmpty(t, results)
		assert.Contains(t, results[0].Snippet, "learning")
	})
}

func TestCountAlignments(t *testing.T) {
	tests := []struct {
		name      string
		terms     []string
		positions map[string][]int
		want      int
	}{
		{
			"consecutive once",
			[]string{"a", "b"},
			map[string][]int{"a": {0, 7}, "b": {1, 4}},
			1,
		},
		{
			"consecutive twice",
			[]string{"a", "b"},
			map[string][]int{"a": {0, 3}, "b": {1, 4}},
			2,
		},
		{
			"never adjacent",
			[]string{"a", "b"},
			map[string][]int{"a": {0}, "b": {5}},
			0,
		},
		{
			"three terms",
			[]string{"a", "b", "c"},
			map[string][]int{"a": {2}, "b": {3}, "c": {4}},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countAlignments(tt.terms, tt.positions))
		})
	}
}
