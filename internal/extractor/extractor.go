// Package extractor locates literal answer spans in ranked passages and
// scores them into the pipeline's final results.
package extractor

import (
	"sort"

	"qa/internal/domain"
	"qa/internal/match"
	"qa/internal/text"
)

// Extractor scans passages for spans matching the question's expected
// answer type. A passage without a valid span contributes zero results,
// never an error.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// ExtractAnswer returns scored answers for the given ranked passages,
// sorted by descending score. The sort is stable: equal scores keep
// passage order. An empty passage slice yields an empty result.
func (e *Extractor) ExtractAnswer(passages []domain.Passage, question domain.QuestionInfo, candidate domain.AnswerInfo) []domain.ResultInfo {
	questionTerms := make(map[string]struct{}, len(question.Terms))
	for _, t := range question.Terms {
		questionTerms[t] = struct{}{}
	}

	var results []domain.ResultInfo
	for rank, passage := range passages {
		termOffsets := termPositions(passage.Text, questionTerms)
		for _, span := range match.Spans(question.Type, passage.Text) {
			if restatesQuestion(span.Text, questionTerms) {
				continue
			}
			score := 1.0/float64(1+rank) + passage.Score + proximity(span.Offset, termOffsets)
			results = append(results, domain.ResultInfo{
				Answer:     span.Text,
				DocumentID: passage.DocumentID,
				Score:      score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// restatesQuestion reports whether every token of the span is either a
// question term or a stopword. Such a span merely echoes the query and
// cannot be the answer.
func restatesQuestion(span string, questionTerms map[string]struct{}) bool {
	tokens := text.Tokenize(span)
	if len(tokens) == 0 {
		return true
	}
	for _, tok := range tokens {
		if text.IsStopword(tok) {
			continue
		}
		if _, ok := questionTerms[tok]; !ok {
			return false
		}
	}
	return true
}

// termPositions finds the byte offsets of every passage token that equals
// a question term. Whole tokens only: a term occurring inside a longer
// word earns no proximity credit.
func termPositions(body string, questionTerms map[string]struct{}) []int {
	toks, offs := text.Tokens(body)
	var offsets []int
	for i, tok := range toks {
		if _, ok := questionTerms[tok]; ok {
			offsets = append(offsets, offs[i])
		}
	}
	return offsets
}

// proximity rewards spans close to a question-term occurrence. A span in a
// passage mentioning no question term gets no proximity credit.
func proximity(offset int, termOffsets []int) float64 {
	if len(termOffsets) == 0 {
		return 0
	}
	best := -1
	for _, o := range termOffsets {
		d := offset - o
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
		}
	}
	return 1.0 / float64(1+best)
}
