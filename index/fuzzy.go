package index

import (
	"github.com/agnivade/levenshtein"
)

// fuzzyThreshold is the maximum edit distance for fuzzy term resolution.
const fuzzyThreshold = 2

// fuzzyMatch finds the indexed term closest to the query term by
// Levenshtein distance. Candidates beyond fuzzyThreshold are ignored;
// among equally close candidates the lexicographically smallest wins,
// keeping resolution deterministic across runs.
func (idx *Index) fuzzyMatch(term string) (match string, distance int, ok bool) {
	best := fuzzyThreshold + 1
	for indexed := range idx.postings {
		d := levenshtein.ComputeDistance(term, indexed)
		if d > fuzzyThreshold {
			continue
		}
		if d < best || (d == best && indexed < match) {
			best = d
			match = indexed
		}
	}
	if best > fuzzyThreshold {
		return "", 0, false
	}
	return match, best, true
}
