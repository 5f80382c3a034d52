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
	"sort"

	"github.com/loupe-search/loupe/core"
)

// Search classifies and executes a raw query, returning ranked,
// snippet-annotated results. Query-time problems are never errors:
// empty queries, unresolvable terms, and no-match conditions all
// degrade to an empty result list.
func (idx *Index) Search(query string) []core.SearchResult {
	return idx.SearchWithMonitor(query, nil)
}

// SearchWithMonitor runs Search with monitoring hooks.
// The monitor receives callbacks at each stage of the search process.
func (idx *Index) SearchWithMonitor(query string, monitor Monitor) []core.SearchResult {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	if query == "" {
		monitor.Finish(nil)
		return nil
	}

	if results, ok := idx.cache.get(query); ok {
		monitor.CacheHit(query)
		monitor.Finish(results)
		return results
	}

	classified := idx.classify(query, monitor)
	monitor.Classified(classified)

	var results []core.SearchResult
	switch q := classified.(type) {
	case TagQuery:
		results = idx.searchTag(q)
	case PhraseQuery:
		results = idx.searchPhrase(q)
	case KeywordQuery:
		results = idx.searchKeyword(q, monitor)
	case emptyQuery:
		results = nil
	}

	idx.cache.put(query, results)
	monitor.Finish(results)
	return results
}

// searchTag returns every document carrying the tag with a constant score.
// Tag hits have no term context, so the snippet is left empty.
func (idx *Index) searchTag(q TagQuery) []core.SearchResult {
	ids := idx.taggedDocuments(q.Tag)
	if len(ids) == 0 {
		return nil
	}

	results := make([]core.SearchResult, 0, len(ids))
	for _, id := range ids {
		doc, ok := idx.docs[id]
		if !ok {
			continue
		}
		results = append(results, core.SearchResult{Doc: doc, Score: 1.0})
	}
	sortResults(results)
	return results
}

// sortResults orders by descending score, breaking ties by ascending
// document id so ranking is deterministic across runs.
func sortResults(results []core.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Doc.ID < results[j].Doc.ID
	})
}
