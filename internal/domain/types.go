package domain

// Category classifies what kind of entity a question expects as an answer.
type Category string

const (
	CategoryPerson     Category = "PERSON"
	CategoryLocation   Category = "LOCATION"
	CategoryDate       Category = "DATE"
	CategoryNumber     Category = "NUMBER"
	CategoryDefinition Category = "DEFINITION"
	CategoryOther      Category = "OTHER"
)

// Categories returns the closed category set in declaration order.
// This order is the tie-break order used by the classifier.
func Categories() []Category {
	return []Category{
		CategoryPerson,
		CategoryLocation,
		CategoryDate,
		CategoryNumber,
		CategoryDefinition,
		CategoryOther,
	}
}

// TrainingExample is one labeled question used to train the classifier.
type TrainingExample struct {
	Text     string
	Category Category
}

// ClassifierTrainingInfo is the statistics a trained classifier needs for
// inference: per-category document and token counts plus the category set
// it was trained against. It is produced once by training, persisted, and
// loaded read-only for inference; it is never mutated after training.
type ClassifierTrainingInfo struct {
	Categories  []Category
	Docs        map[Category]int
	TotalDocs   int
	Tokens      map[Category]map[string]int
	TokenTotals map[Category]int
	Vocab       int
}

// SameCategories reports whether the model was trained against exactly the
// given category set. A model is only valid for the set it was trained with.
func (m *ClassifierTrainingInfo) SameCategories(categories []Category) bool {
	if len(m.Categories) != len(categories) {
		return false
	}
	set := make(map[Category]struct{}, len(m.Categories))
	for _, c := range m.Categories {
		set[c] = struct{}{}
	}
	for _, c := range categories {
		if _, ok := set[c]; !ok {
			return false
		}
	}
	return true
}

// QuestionInfo is the parsed form of a raw question: the expected answer
// category plus the normalized, stopword-filtered query terms. Immutable
// once produced.
type QuestionInfo struct {
	Raw   string
	Type  Category
	Terms []string
}

// AnswerInfo is a candidate hypothesis produced by the search engine:
// a set of terms to project onto the corpus and the answer type they imply.
type AnswerInfo struct {
	Terms []string
	Type  Category
}

// Document is a read-only view of an indexed document. Score is the
// retrieval-time relevance and is meaningful only within one query result.
type Document struct {
	ID      string
	Content string
	Score   float64
}

// Passage is a contiguous span of a document considered as a unit for
// answer extraction. It back-references its document by id; its lifetime
// is bounded to one candidate's retrieval step.
type Passage struct {
	DocumentID string
	Text       string
	Offset     int
	Index      int
	Score      float64
}

// ResultInfo is the terminal output unit: an extracted literal answer,
// the id of the supporting document and the final score.
type ResultInfo struct {
	Answer     string
	DocumentID string
	Score      float64
}
