package classifier

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"qa/internal/domain"
)

// LoadTrainingExamples reads a labeled question corpus: one example per
// line, "CATEGORY question text". Lines with an unknown category label or
// no question text are skipped with a warning, not fatal.
func LoadTrainingExamples(path string, categories []domain.Category) ([]domain.TrainingExample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening training corpus: %w", err)
	}
	defer f.Close()

	known := make(map[domain.Category]struct{}, len(categories))
	for _, c := range categories {
		known[c] = struct{}{}
	}

	var examples []domain.TrainingExample
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		label, question, found := strings.Cut(raw, " ")
		if !found || strings.TrimSpace(question) == "" {
			log.Printf("training corpus %s:%d: no question text, skipping", path, line)
			continue
		}
		cat := domain.Category(strings.ToUpper(label))
		if _, ok := known[cat]; !ok {
			log.Printf("training corpus %s:%d: unknown category %q, skipping", path, line, label)
			continue
		}
		examples = append(examples, domain.TrainingExample{
			Text:     strings.TrimSpace(question),
			Category: cat,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading training corpus: %w", err)
	}
	return examples, nil
}
