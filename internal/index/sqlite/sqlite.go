// Package sqlite provides a persistent corpus index backed by SQLite.
// Documents survive process restarts; ranking is done in Go over the
// scanned rows, which is fine for local corpora.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"qa/internal/domain"
	"qa/internal/index"
)

// Index stores documents in a SQLite database file. INSERT OR REPLACE on
// the id primary key makes re-importing the same corpus idempotent.
type Index struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open creates or opens the index database at path.
func Open(path string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening index database: %w", err)
	}
	schema := `CREATE TABLE IF NOT EXISTS documents (
		id      TEXT PRIMARY KEY,
		content TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing index schema: %w", err)
	}
	return &Index{db: db}, nil
}

func (ix *Index) Add(doc domain.Document) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	_, err := ix.db.Exec(
		`INSERT OR REPLACE INTO documents (id, content) VALUES (?, ?)`,
		doc.ID, doc.Content,
	)
	if err != nil {
		return fmt.Errorf("inserting document %s: %w", doc.ID, err)
	}
	return nil
}

// Search scans all documents and ranks them by tf-idf relevance, score
// descending then id ascending. Empty terms yield an empty result.
func (ix *Index) Search(terms []string, limit int) ([]domain.Document, error) {
	if len(terms) == 0 {
		return nil, nil
	}
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	rows, err := ix.db.Query(`SELECT id, content FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	type entry struct {
		doc    domain.Document
		counts map[string]int
		total  int
	}
	var entries []entry
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.ID, &doc.Content); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		counts, total := index.TermCounts(doc.Content)
		entries = append(entries, entry{doc: doc, counts: counts, total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading document rows: %w", err)
	}

	n := len(entries)
	df := make(map[string]int, len(terms))
	for _, term := range terms {
		for _, e := range entries {
			if e.counts[term] > 0 {
				df[term]++
			}
		}
	}

	var out []domain.Document
	for _, e := range entries {
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
	var count int
	err := ix.db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&count)
	return count, err
}

func (ix *Index) Close() error {
	return ix.db.Close()
}
