package domain

// QuestionParser turns raw question text into a QuestionInfo. Parsing
// never fails hard; malformed input yields an OTHER question with no terms.
type QuestionParser interface {
	Parse(question string) QuestionInfo
}

// QuestionClassifier assigns one category out of a fixed set to a question.
// Train and Classify are pure functions of their inputs, so one model can
// be shared by concurrent inference calls.
type QuestionClassifier interface {
	Train(categories []Category, examples []TrainingExample) (*ClassifierTrainingInfo, error)
	Classify(categories []Category, model *ClassifierTrainingInfo, text string) Category
}

// SearchEngine produces ranked candidate answer hypotheses for a parsed
// question. An empty term list yields an empty candidate list.
type SearchEngine interface {
	Search(question QuestionInfo) []AnswerInfo
}

// Indexer is the corpus index: a searchable store of documents.
// Add must be keyed by Document.ID so that re-adding replaces, never
// duplicates. Search ranks by term relevance; empty terms yield nothing.
type Indexer interface {
	Add(doc Document) error
	Search(terms []string, limit int) ([]Document, error)
	Count() (int, error)
	Close() error
}

// DocumentRetriever binds an Indexer, imports a corpus and answers term
// queries against it. Querying before SetIndexer and ImportDocuments is a
// contract violation and fails fast.
type DocumentRetriever interface {
	SetIndexer(ix Indexer)
	ImportDocuments(path string) error
	GetDocuments(terms []string) ([]Document, error)
}

// PassageRetriever segments a document into passages and keeps only those
// compatible with the candidate's answer type, ranked by term overlap.
type PassageRetriever interface {
	GetPassages(doc Document, candidate AnswerInfo) []Passage
}

// AnswerExtractor scans ranked passages for literal answer spans matching
// the question's expected type and returns them scored, best first.
type AnswerExtractor interface {
	ExtractAnswer(passages []Passage, question QuestionInfo, candidate AnswerInfo) []ResultInfo
}
