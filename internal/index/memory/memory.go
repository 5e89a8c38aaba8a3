// Package memory provides an in-memory corpus index with tf-idf ranking.
package memory

import (
	"sort"
	"sync"

	"qa/internal/domain"
	"qa/internal/index"
)

type entry struct {
	doc    domain.Document
	counts map[string]int
	total  int
}

// Index keeps documents and their term statistics in memory. Add is keyed
// by document id, so re-adding a document replaces it. Reads are safe
// concurrently once importing has finished.
type Index struct {
	mu   sync.RWMutex
	docs map[string]entry
}

func New() *Index {
	return &Index{docs: make(map[string]entry)}
}

func (ix *Index) Add(doc domain.Document) error {
	counts, total := index.TermCounts(doc.Content)
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.docs[doc.ID] = entry{doc: doc, counts: counts, total: total}
	return nil
}

// Search ranks documents by tf-idf relevance to the query terms. Ordering
// is deterministic: score descending, then document id ascending. Empty
// terms yield an empty result, never the whole corpus.
func (ix *Index) Search(terms []string, limit int) ([]domain.Document, error) {
	if len(terms) == 0 {
		return nil, nil
	}
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	n := len(ix.docs)
	df := make(map[string]int, len(terms))
	for _, term := range terms {
		for _, e := range ix.docs {
			if e.counts[term] > 0 {
				df[term]++
			}
		}
	}

	var out []domain.Document
	for _, e := range ix.docs {
		score := index.Score(terms, e.counts, e.total, df, n)
		if score <= 0 {
			continue
		}
		doc := e.doc
		doc.Score = score
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (ix *Index) Count() (int, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.docs), nil
}

func (ix *Index) Close() error { return nil }
