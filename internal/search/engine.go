// Package search generates ranked candidate answer hypotheses for a
// parsed question.
package search

import (
	"qa/internal/domain"
	"qa/internal/text"
)

// Engine combines the question's expected answer type with term subsets
// and synonym substitutions of its query terms. More specific candidates
// (more terms) rank first; within equal specificity, generation order is
// preserved, so output is deterministic for a given question.
type Engine struct {
	maxCandidates int
}

// NewEngine creates a search engine emitting at most maxCandidates
// hypotheses per question.
func NewEngine(maxCandidates int) *Engine {
	if maxCandidates <= 0 {
		maxCandidates = 5
	}
	return &Engine{maxCandidates: maxCandidates}
}

// Search returns ranked candidates. A question with no content terms
// yields an empty slice; downstream stages then produce no results.
func (e *Engine) Search(q domain.QuestionInfo) []domain.AnswerInfo {
	if len(q.Terms) == 0 {
		return nil
	}

	termSet := make(map[string]struct{}, len(q.Terms))
	for _, t := range q.Terms {
		termSet[t] = struct{}{}
	}

	candidates := []domain.AnswerInfo{{Terms: q.Terms, Type: q.Type}}
	seen := map[string]struct{}{key(q.Terms): {}}

	// Synonym substitutions keep the term count, so they stay ahead of the
	// reduced subsets below. A synonym that is already a question term is
	// skipped: substituting it would double the term and skew tf weighting.
	for i, term := range q.Terms {
		for _, syn := range text.Synonyms(term) {
			if _, ok := termSet[syn]; ok {
				continue
			}
			alt := append([]string(nil), q.Terms...)
			alt[i] = syn
			addCandidate(&candidates, seen, alt, q.Type)
		}
	}

	// Leave-one-out subsets, dropping the least informative term first.
	if len(q.Terms) > 1 {
		for _, drop := range dropOrder(q.Terms) {
			sub := make([]string, 0, len(q.Terms)-1)
			for i, term := range q.Terms {
				if i != drop {
					sub = append(sub, term)
				}
			}
			addCandidate(&candidates, seen, sub, q.Type)
		}
	}

	if len(candidates) > e.maxCandidates {
		candidates = candidates[:e.maxCandidates]
	}
	return candidates
}

func addCandidate(candidates *[]domain.AnswerInfo, seen map[string]struct{}, terms []string, cat domain.Category) {
	k := key(terms)
	if _, ok := seen[k]; ok {
		return
	}
	seen[k] = struct{}{}
	*candidates = append(*candidates, domain.AnswerInfo{Terms: terms, Type: cat})
}

// dropOrder returns term indexes ordered by increasing informativeness:
// shorter terms are assumed more common and are dropped first. Ties keep
// original term order.
func dropOrder(terms []string) []int {
	idx := make([]int, len(terms))
	for i := range terms {
		idx[i] = i
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && len(terms[idx[j]]) < len(terms[idx[j-1]]); j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
	return idx
}

func key(terms []string) string {
	k := ""
	for _, t := range terms {
		k += t + "\x00"
	}
	return k
}
