package index

import (
	"regexp"
	"strings"

	"github.com/loupe-search/loupe/core"
)

var tagPattern = regexp.MustCompile(`#(\w+)`)

// ExtractTags scans content for #word tags and returns them lowercased,
// deduplicated, in order of first appearance.
func ExtractTags(content string) []string {
	matches := tagPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// indexTags inserts the document id into each of its tags' id sets.
func (idx *Index) indexTags(doc core.Document) {
	for _, tag := range doc.Tags {
		ids := idx.tags[tag]
		if containsID(ids, doc.ID) {
			continue
		}
		idx.tags[tag] = append(ids, doc.ID)
	}
}

// deindexTags deletes the document id from each of its tags' id sets,
// dropping tags whose sets become empty.
func (idx *Index) deindexTags(doc core.Document) {
	for _, tag := range doc.Tags {
		ids := idx.tags[tag]
		for i, id := range ids {
			if id == doc.ID {
				idx.tags[tag] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
		if len(idx.tags[tag]) == 0 {
			delete(idx.tags, tag)
		}
	}
}

// taggedDocuments returns the ids carrying the normalized tag.
func (idx *Index) taggedDocuments(tag string) []core.DocumentID {
	return idx.tags[tag]
}

func containsID(ids []core.DocumentID, id core.DocumentID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
