// Package parser turns raw question text into the structured form the rest
// of the pipeline consumes.
package parser

import (
	"log"
	"strings"

	"qa/internal/domain"
	"qa/internal/text"
)

// Parser normalizes a question and assigns its expected answer category
// via a trained classifier model. Parsing never fails hard: without a
// model, or for empty input, it produces a degenerate OTHER question.
type Parser struct {
	categories []domain.Category
	classifier domain.QuestionClassifier
	model      *domain.ClassifierTrainingInfo
}

// New creates a parser. model may be nil; every question then parses to
// the OTHER category and a warning is logged once up front. The parser
// holds no mutable state, so it is safe for concurrent Parse calls.
func New(categories []domain.Category, qc domain.QuestionClassifier, model *domain.ClassifierTrainingInfo) *Parser {
	if model == nil {
		log.Printf("no classifier model loaded; questions default to %s", domain.CategoryOther)
	}
	return &Parser{categories: categories, classifier: qc, model: model}
}

// Parse builds the QuestionInfo for a raw question.
func (p *Parser) Parse(question string) domain.QuestionInfo {
	raw := strings.TrimSpace(question)
	info := domain.QuestionInfo{Raw: question, Type: domain.CategoryOther}
	if raw == "" {
		return info
	}
	if p.model != nil {
		info.Type = p.classifier.Classify(p.categories, p.model, raw)
	}
	info.Terms = text.ContentTerms(raw)
	return info
}
