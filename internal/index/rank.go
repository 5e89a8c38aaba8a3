// Package index holds the term statistics and tf-idf scoring shared by
// the concrete Indexer implementations.
package index

import (
	"math"

	"qa/internal/text"
)

// TermCounts tokenizes document content into stopword-filtered term
// frequencies and the total content token count.
func TermCounts(content string) (map[string]int, int) {
	counts := make(map[string]int)
	total := 0
	for _, tok := range text.Tokenize(content) {
		if text.IsStopword(tok) {
			continue
		}
		counts[tok]++
		total++
	}
	return counts, total
}

// IDF computes the smoothed inverse document frequency for a term that
// appears in df of n documents.
func IDF(df, n int) float64 {
	return math.Log(float64(1+n)/float64(1+df)) + 1.0
}

// Score computes the tf-idf relevance of one document for the query
// terms, given the corpus-wide document frequencies df over n documents.
func Score(queryTerms []string, counts map[string]int, total int, df map[string]int, n int) float64 {
	if total == 0 {
		return 0
	}
	score := 0.0
	for _, term := range queryTerms {
		tf := counts[term]
		if tf == 0 {
			continue
		}
		score += float64(tf) / float64(total) * IDF(df[term], n)
	}
	return score
}
