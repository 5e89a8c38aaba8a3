package retriever

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"qa/internal/domain"
	"qa/internal/match"
	"qa/internal/text"
)

var sentencePattern = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

// Passages segments a document into sliding sentence windows, keeps only
// windows compatible with the candidate's answer type and ranks them by
// term overlap. Segmentation is deterministic for a given document.
type Passages struct {
	sentencesPerPassage int
	overlapSentences    int
}

// NewPassages creates a passage retriever with the given window geometry.
func NewPassages(sentencesPerPassage, overlapSentences int) *Passages {
	if sentencesPerPassage <= 0 {
		sentencesPerPassage = 3
	}
	if overlapSentences < 0 || overlapSentences >= sentencesPerPassage {
		overlapSentences = 0
	}
	return &Passages{sentencesPerPassage: sentencesPerPassage, overlapSentences: overlapSentences}
}

// GetPassages returns ranked passages of doc that could contain an answer
// of the candidate's type. No type-compatible passage yields an empty
// slice, which downstream treats as a normal zero-result case.
func (p *Passages) GetPassages(doc domain.Document, candidate domain.AnswerInfo) []domain.Passage {
	spans := sentencePattern.FindAllStringIndex(doc.Content, -1)
	if len(spans) == 0 {
		if strings.TrimSpace(doc.Content) == "" {
			return nil
		}
		spans = [][]int{{0, len(doc.Content)}}
	}

	termSet := make(map[string]struct{}, len(candidate.Terms))
	for _, t := range candidate.Terms {
		termSet[t] = struct{}{}
	}

	var passages []domain.Passage
	idx := 0
	for start := 0; start < len(spans); {
		end := start + p.sentencesPerPassage
		if end > len(spans) {
			end = len(spans)
		}
		from, to := spans[start][0], spans[end-1][1]
		raw := doc.Content[from:to]
		body := strings.TrimSpace(raw)
		// keep the offset pointing at the trimmed text
		from += strings.Index(raw, body)
		if body != "" && match.Compatible(candidate.Type, body) {
			passages = append(passages, domain.Passage{
				DocumentID: doc.ID,
				Text:       body,
				Offset:     from,
				Index:      idx,
				Score:      overlap(termSet, body),
			})
		}
		idx++
		if end == len(spans) {
			break
		}
		start = end - p.overlapSentences
	}

	sort.SliceStable(passages, func(i, j int) bool {
		return passages[i].Score > passages[j].Score
	})
	return passages
}

// overlap is the Ochiai coefficient between the candidate's term set and
// the distinct tokens of the passage.
func overlap(terms map[string]struct{}, body string) float64 {
	if len(terms) == 0 {
		return 0
	}
	distinct := make(map[string]struct{})
	inter := 0
	for _, tok := range text.Tokenize(body) {
		if _, ok := distinct[tok]; ok {
			continue
		}
		distinct[tok] = struct{}{}
		if _, ok := terms[tok]; ok {
			inter++
		}
	}
	if len(distinct) == 0 {
		return 0
	}
	return float64(inter) / (math.Sqrt(float64(len(terms))) * math.Sqrt(float64(len(distinct))))
}
