package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"qa/internal/classifier"
	"qa/internal/domain"
)

func trainedModel(t *testing.T) (*classifier.Bayes, *domain.ClassifierTrainingInfo) {
	t.Helper()
	b := classifier.NewBayes(0, domain.CategoryOther)
	model, err := b.Train(domain.Categories(), []domain.TrainingExample{
		{Text: "Where is Rome ?", Category: domain.CategoryLocation},
		{Text: "Who wrote Hamlet ?", Category: domain.CategoryPerson},
	})
	require.NoError(t, err)
	return b, model
}

func TestParseAssignsTypeAndTerms(t *testing.T) {
	b, model := trainedModel(t)
	p := New(domain.Categories(), b, model)

	info := p.Parse("Where is Milan ?")
	require.Equal(t, domain.CategoryLocation, info.Type)
	require.Equal(t, []string{"milan"}, info.Terms)
	require.Equal(t, "Where is Milan ?", info.Raw)
}

func TestParseEmptyInput(t *testing.T) {
	b, model := trainedModel(t)
	p := New(domain.Categories(), b, model)

	for _, q := range []string{"", "   ", "\t\n"} {
		info := p.Parse(q)
		require.Equal(t, domain.CategoryOther, info.Type)
		require.Empty(t, info.Terms)
	}
}

func TestParseWithoutModelDefaultsToOther(t *testing.T) {
	b := classifier.NewBayes(0, domain.CategoryOther)
	p := New(domain.Categories(), b, nil)

	info := p.Parse("Who developed the Macintosh computer ?")
	require.Equal(t, domain.CategoryOther, info.Type)
	require.Equal(t, []string{"developed", "macintosh", "computer"}, info.Terms)
}

func TestParseDropsStopwordsAndDuplicates(t *testing.T) {
	b, model := trainedModel(t)
	p := New(domain.Categories(), b, model)

	info := p.Parse("Where where is is the the city city of Milan ?")
	require.Equal(t, []string{"city", "milan"}, info.Terms)
}
