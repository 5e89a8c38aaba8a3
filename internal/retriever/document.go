// Package retriever projects candidate hypotheses onto the corpus:
// document retrieval against the index and passage retrieval within a
// document.
package retriever

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"qa/internal/domain"
)

// ErrNotReady marks a query made before SetIndexer and ImportDocuments.
// This is a contract violation and fails fast rather than returning an
// empty result.
var ErrNotReady = errors.New("document retriever not ready: indexer not set or corpus not imported")

// Documents retrieves ranked documents for a candidate's terms. Importing
// is single-writer and must finish before any concurrent querying starts.
type Documents struct {
	ix       domain.Indexer
	imported bool
	limit    int
}

// NewDocuments creates a retriever returning at most limit documents per
// query.
func NewDocuments(limit int) *Documents {
	if limit <= 0 {
		limit = 10
	}
	return &Documents{limit: limit}
}

// SetIndexer binds the retrieval backend. Must be called before
// ImportDocuments or GetDocuments.
func (d *Documents) SetIndexer(ix domain.Indexer) {
	d.ix = ix
}

// ImportDocuments bulk-loads every .txt file under path (a directory or a
// glob pattern) into the index. The document id is the file base name
// without extension, so re-importing the same path replaces rather than
// duplicates.
func (d *Documents) ImportDocuments(path string) error {
	if d.ix == nil {
		return ErrNotReady
	}
	if strings.TrimSpace(path) == "" {
		return errors.New("empty document corpus path")
	}

	pattern := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		pattern = filepath.Join(path, "*.txt")
	}
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("resolving corpus path %s: %w", path, err)
	}

	imported := 0
	for _, m := range matches {
		if !strings.HasSuffix(strings.ToLower(m), ".txt") {
			continue
		}
		data, err := os.ReadFile(m)
		if err != nil {
			return fmt.Errorf("reading corpus file %s: %w", m, err)
		}
		doc := domain.Document{
			ID:      strings.TrimSuffix(filepath.Base(m), filepath.Ext(m)),
			Content: string(data),
		}
		if err := d.ix.Add(doc); err != nil {
			return fmt.Errorf("indexing %s: %w", doc.ID, err)
		}
		imported++
	}
	if imported == 0 {
		return fmt.Errorf("no .txt documents found under %s", path)
	}
	d.imported = true
	return nil
}

// GetDocuments queries the index by term overlap. Empty terms yield an
// empty result, never the whole corpus.
func (d *Documents) GetDocuments(terms []string) ([]domain.Document, error) {
	if d.ix == nil || !d.imported {
		return nil, ErrNotReady
	}
	if len(terms) == 0 {
		return nil, nil
	}
	return d.ix.Search(terms, d.limit)
}
