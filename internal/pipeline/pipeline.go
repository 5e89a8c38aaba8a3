// Package pipeline wires the question-answering stages together and runs
// them per question.
package pipeline

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"qa/internal/domain"
)

// Pipeline drives one question through parse, candidate search, document
// and passage retrieval and answer extraction. All stages are read-only
// once the corpus is imported, so a single Pipeline serves concurrent
// questions.
type Pipeline struct {
	parser      domain.QuestionParser
	engine      domain.SearchEngine
	documents   domain.DocumentRetriever
	passages    domain.PassageRetriever
	extractor   domain.AnswerExtractor
	resultLimit int
}

// New assembles a pipeline from its stages. resultLimit caps the merged
// result list per question; 0 means unlimited.
func New(p domain.QuestionParser, e domain.SearchEngine, d domain.DocumentRetriever, pr domain.PassageRetriever, x domain.AnswerExtractor, resultLimit int) *Pipeline {
	return &Pipeline{
		parser:      p,
		engine:      e,
		documents:   d,
		passages:    pr,
		extractor:   x,
		resultLimit: resultLimit,
	}
}

// Answer runs the full pipeline for one question. Empty stages along the
// way (no candidates, no documents, no passages, no spans) are normal and
// produce an empty result list, not an error.
func (p *Pipeline) Answer(question string) ([]domain.ResultInfo, error) {
	info := p.parser.Parse(question)
	candidates := p.engine.Search(info)

	var merged []domain.ResultInfo
	for _, candidate := range candidates {
		docs, err := p.documents.GetDocuments(candidate.Terms)
		if err != nil {
			return nil, fmt.Errorf("retrieving documents: %w", err)
		}
		var passages []domain.Passage
		for _, doc := range docs {
			passages = append(passages, p.passages.GetPassages(doc, candidate)...)
		}
		merged = append(merged, p.extractor.ExtractAnswer(passages, info, candidate)...)
	}

	results := dedupe(merged)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if p.resultLimit > 0 && len(results) > p.resultLimit {
		results = results[:p.resultLimit]
	}
	return results, nil
}

// AnswerAll answers independent questions in parallel. The slice is
// ordered like the input; a failed question yields an empty entry and a
// logged error without blocking the others.
func (p *Pipeline) AnswerAll(questions []string) [][]domain.ResultInfo {
	out := make([][]domain.ResultInfo, len(questions))
	var wg sync.WaitGroup
	for i, q := range questions {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			results, err := p.Answer(q)
			if err != nil {
				log.Printf("answering %q: %v", q, err)
				return
			}
			out[i] = results
		}(i, q)
	}
	wg.Wait()
	return out
}

// dedupe keeps the best-scoring result per (answer, document) pair,
// preserving first-seen order among the survivors.
func dedupe(results []domain.ResultInfo) []domain.ResultInfo {
	type key struct{ answer, doc string }
	bestIdx := make(map[key]int, len(results))
	var out []domain.ResultInfo
	for _, r := range results {
		k := key{r.Answer, r.DocumentID}
		if i, ok := bestIdx[k]; ok {
			if r.Score > out[i].Score {
				out[i].Score = r.Score
			}
			continue
		}
		bestIdx[k] = len(out)
		out = append(out, r)
	}
	return out
}
