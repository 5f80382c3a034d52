// Copyright 2025 Loupe Search
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package index

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/loupe-search/loupe/core"
)

// Extractor is the content-extraction collaborator consumed during
// directory synchronization. extract.Registry satisfies it.
type Extractor interface {
	Supported(path string) bool
	Extract(path string) (string, error)
}

// fileState is one on-disk file eligible for indexing.
type fileState struct {
	path    string
	modTime int64
}

// addition is a file scheduled for (re-)extraction and indexing.
// reuseID is non-zero for changed files keeping their identifier.
type addition struct {
	file    fileState
	reuseID core.DocumentID
}

// processed is the fan-out result for one file: the finished document
// record plus its partial postings, ready for the sequential merge.
type processed struct {
	doc     core.Document
	partial map[string][]int
	err     error
}

// SyncDirectory reconciles the index with the directory's current file set.
//
// Files are matched by path; a differing modification time replaces the old
// record under the same id, vanished paths are removed, and new paths are
// added under fresh ids. Removals apply before additions. Content extraction
// and tokenization of scheduled additions run on a worker pool with no
// shared mutable state; a single goroutine merges the results.
//
// Any extraction failure aborts the call with the offending path. Mutations
// already applied are not rolled back, but aggregates are recomputed and the
// search cache is cleared on every exit path, so the index stays internally
// consistent.
func (idx *Index) SyncDirectory(dir string, extractor Extractor) error {
	if extractor == nil {
		return ErrExtractorRequired
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("sync %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	current, err := idx.scanDirectory(dir, extractor)
	if err != nil {
		return fmt.Errorf("sync %s: %w", dir, err)
	}

	removals, additions := idx.planSync(current)
	if len(removals) == 0 && len(additions) == 0 {
		// Nothing changed on disk; the mandatory cache clear still applies.
		idx.finishMutation()
		return nil
	}

	defer idx.finishMutation()

	for _, id := range removals {
		if doc, ok := idx.docs[id]; ok {
			idx.deleteDocument(doc)
		}
	}

	results, err := idx.extractAll(additions, extractor)
	if err != nil {
		return err
	}
	for _, res := range results {
		if res.err != nil {
			return res.err
		}
		idx.insertDocument(res.doc, res.partial)
	}

	return nil
}

// scanDirectory enumerates the directory's supported files with their
// modification times. Unsupported entries are skipped with a log line.
func (idx *Index) scanDirectory(dir string, extractor Extractor) ([]fileState, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []fileState
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !extractor.Supported(path) {
			idx.logger.Debug("skipping unsupported file", "path", path)
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, fileState{path: path, modTime: info.ModTime().Unix()})
	}
	return files, nil
}

// planSync diffs the on-disk file set against the document store and
// schedules removals and additions. Changed files are scheduled as a
// removal plus a re-addition under the same id.
func (idx *Index) planSync(current []fileState) (removals []core.DocumentID, additions []addition) {
	onDisk := make(map[string]fileState, len(current))
	for _, f := range current {
		onDisk[f.path] = f
	}

	indexed := make(map[string]core.Document, len(idx.docs))
	for _, doc := range idx.docs {
		indexed[doc.Path] = doc
	}

	for path, doc := range indexed {
		if _, ok := onDisk[path]; !ok {
			removals = append(removals, doc.ID)
		}
	}

	for _, f := range current {
		doc, ok := indexed[f.path]
		switch {
		case !ok:
			additions = append(additions, addition{file: f})
		case doc.ModTime != f.modTime:
			removals = append(removals, doc.ID)
			additions = append(additions, addition{file: f, reuseID: doc.ID})
		}
	}
	return removals, additions
}

// extractAll fans extraction and tokenization out over a worker pool and
// returns one result slot per addition, in input order. Identifier
// assignment uses the atomic counter, so workers never collide.
func (idx *Index) extractAll(additions []addition, extractor Extractor) ([]processed, error) {
	if len(additions) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(idx.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]processed, len(additions))
	var wg sync.WaitGroup
	for i, add := range additions {
		wg.Add(1)
		slot, add := &results[i], add
		submitErr := pool.Submit(func() {
			defer wg.Done()
			*slot = idx.processFile(add, extractor)
		})
		if submitErr != nil {
			wg.Done()
			*slot = processed{err: submitErr}
		}
	}
	wg.Wait()

	return results, nil
}

// processFile extracts and tokenizes a single scheduled addition.
func (idx *Index) processFile(add addition, extractor Extractor) processed {
	idx.logger.Debug("indexing document", "path", add.file.path)

	content, err := extractor.Extract(add.file.path)
	if err != nil {
		return processed{err: err}
	}

	id := add.reuseID
	if id == 0 {
		id = idx.newDocID()
	}

	partial, tokenCount := partialPostings(idx.tokenizer.Tokenize(content))
	doc := core.Document{
		ID:         id,
		Path:       add.file.path,
		Content:    content,
		Title:      fileStem(add.file.path),
		TokenCount: tokenCount,
		ModTime:    add.file.modTime,
	}
	return processed{doc: doc, partial: partial}
}

// fileStem returns the base name without its extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
