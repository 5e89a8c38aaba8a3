// Package classifier implements the trainable question classifier and the
// persistence of its model artifact.
package classifier

import (
	"errors"
	"math"

	"qa/internal/domain"
	"qa/internal/text"
)

// Bayes is a multinomial naive Bayes classifier over word tokens.
// Stopwords are kept during tokenization: question words like "who" and
// "where" are exactly the signal that separates categories.
type Bayes struct {
	minConfidence float64
	fallback      domain.Category
}

// NewBayes creates a classifier. Predictions whose normalized posterior
// falls below minConfidence resolve to the fallback category.
func NewBayes(minConfidence float64, fallback domain.Category) *Bayes {
	return &Bayes{minConfidence: minConfidence, fallback: fallback}
}

// Train builds category statistics from labeled examples. Categories with
// zero examples are allowed but will never be predicted. Statistics do not
// depend on example order.
func (b *Bayes) Train(categories []domain.Category, examples []domain.TrainingExample) (*domain.ClassifierTrainingInfo, error) {
	if len(categories) == 0 {
		return nil, errors.New("no categories to train against")
	}
	if len(examples) == 0 {
		return nil, errors.New("no training examples")
	}
	known := make(map[domain.Category]struct{}, len(categories))
	for _, c := range categories {
		known[c] = struct{}{}
	}

	info := &domain.ClassifierTrainingInfo{
		Categories:  append([]domain.Category(nil), categories...),
		Docs:        make(map[domain.Category]int),
		Tokens:      make(map[domain.Category]map[string]int),
		TokenTotals: make(map[domain.Category]int),
	}
	vocab := make(map[string]struct{})
	for _, ex := range examples {
		if _, ok := known[ex.Category]; !ok {
			return nil, errors.New("example labeled with category outside the training set: " + string(ex.Category))
		}
		info.Docs[ex.Category]++
		info.TotalDocs++
		counts := info.Tokens[ex.Category]
		if counts == nil {
			counts = make(map[string]int)
			info.Tokens[ex.Category] = counts
		}
		for _, tok := range text.Tokenize(ex.Text) {
			counts[tok]++
			info.TokenTotals[ex.Category]++
			vocab[tok] = struct{}{}
		}
	}
	info.Vocab = len(vocab)
	return info, nil
}

// Classify returns exactly one category from the given set. Ties resolve
// to the earliest category in declaration order. A nil model, a model
// trained against a different category set, or a posterior below the
// confidence threshold all resolve to the fallback category.
func (b *Bayes) Classify(categories []domain.Category, model *domain.ClassifierTrainingInfo, question string) domain.Category {
	if len(categories) == 0 {
		return b.fallback
	}
	if model == nil || model.TotalDocs == 0 || !model.SameCategories(categories) {
		return b.fallback
	}

	tokens := text.Tokenize(question)
	scores := make([]float64, len(categories))
	scored := make([]bool, len(categories))
	for i, cat := range categories {
		docs := model.Docs[cat]
		if docs == 0 {
			continue // never predicted without examples
		}
		score := math.Log(float64(docs) / float64(model.TotalDocs))
		denom := float64(model.TokenTotals[cat] + model.Vocab)
		for _, tok := range tokens {
			score += math.Log(float64(model.Tokens[cat][tok]+1) / denom)
		}
		scores[i] = score
		scored[i] = true
	}

	best := -1
	for i := range categories {
		if !scored[i] {
			continue
		}
		if best == -1 || scores[i] > scores[best] {
			best = i
		}
	}
	if best == -1 {
		return b.fallback
	}
	if b.minConfidence > 0 && posterior(scores, scored, best) < b.minConfidence {
		return b.fallback
	}
	return categories[best]
}

// posterior normalizes log scores with log-sum-exp and returns the
// probability mass of the winning category.
func posterior(scores []float64, scored []bool, best int) float64 {
	max := scores[best]
	sum := 0.0
	for i, s := range scores {
		if !scored[i] {
			continue
		}
		sum += math.Exp(s - max)
	}
	if sum == 0 {
		return 0
	}
	return 1.0 / sum
}
