package index

import (
	"github.com/loupe-search/loupe/core"
)

// AddDocument inserts a document into the index and returns its assigned id.
// Tags and the token count are always re-derived from the content, so the
// postings, tag index, and document record cannot disagree. The search
// cache is invalidated.
func (idx *Index) AddDocument(doc core.Document) (core.DocumentID, error) {
	if err := core.ValidateDocument(&doc); err != nil {
		return 0, err
	}
	doc.ID = idx.newDocID()
	idx.insertDocument(doc, nil)
	idx.finishMutation()
	return doc.ID, nil
}

// RemoveDocument deletes a document and rolls its terms and tags out of the
// dependent indexes. The removed record is returned so callers can inspect
// it; ok is false when the id is unknown. The search cache is invalidated.
func (idx *Index) RemoveDocument(id core.DocumentID) (core.Document, bool) {
	doc, ok := idx.docs[id]
	if !ok {
		return core.Document{}, false
	}
	idx.deleteDocument(doc)
	idx.finishMutation()
	return doc, true
}

// insertDocument applies a single document to the store, postings, and tag
// index without touching aggregates or the cache. When partial is nil the
// document's postings are derived by tokenizing its content.
// The document's id must already be assigned.
func (idx *Index) insertDocument(doc core.Document, partial map[string][]int) {
	if partial == nil {
		var count int
		partial, count = partialPostings(idx.tokenizer.Tokenize(doc.Content))
		doc.TokenCount = count
	}
	doc.Tags = ExtractTags(doc.Content)

	idx.docs[doc.ID] = doc
	idx.indexPostings(doc.ID, partial)
	idx.indexTags(doc)
}

// deleteDocument removes a single document from the store, postings, and tag
// index without touching aggregates or the cache. The tokenizer is
// deterministic, so re-tokenizing the stored content reproduces exactly the
// terms that were indexed.
func (idx *Index) deleteDocument(doc core.Document) {
	partial, _ := partialPostings(idx.tokenizer.Tokenize(doc.Content))
	idx.deindexPostings(doc.ID, partial)
	idx.deindexTags(doc)
	delete(idx.docs, doc.ID)
}

// Rebuild re-derives the postings and tag indexes from the stored document
// contents. Useful after a tokenizer change; document ids are preserved.
func (idx *Index) Rebuild() {
	idx.postings = make(map[string][]core.Posting)
	idx.tags = make(map[string][]core.DocumentID)
	for id, doc := range idx.docs {
		partial, count := partialPostings(idx.tokenizer.Tokenize(doc.Content))
		doc.TokenCount = count
		doc.Tags = ExtractTags(doc.Content)
		idx.docs[id] = doc
		idx.indexPostings(id, partial)
		idx.indexTags(doc)
	}
	idx.finishMutation()
}
