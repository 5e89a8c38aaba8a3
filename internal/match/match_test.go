package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"qa/internal/domain"
)

func spanTexts(spans []Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

func TestPersonSpansStripLeadingFiller(t *testing.T) {
	spans := Spans(domain.CategoryPerson, "The Macintosh was developed by Apple in 1984.")
	require.Equal(t, []string{"Macintosh", "Apple"}, spanTexts(spans))
}

func TestDateSpans(t *testing.T) {
	texts := spanTexts(Spans(domain.CategoryDate, "Released on January 24, 1984 and revised in 1990."))
	require.Contains(t, texts, "January 24, 1984")
	require.Contains(t, texts, "1990")
}

func TestNumberSpans(t *testing.T) {
	texts := spanTexts(Spans(domain.CategoryNumber, "It sold 1,250,000 units at 2495.50 dollars."))
	require.Equal(t, []string{"1,250,000", "2495.50"}, texts)
}

func TestDefinitionSpans(t *testing.T) {
	spans := Spans(domain.CategoryDefinition, "Photosynthesis is the process plants use to make food. Nothing else here!")
	require.Len(t, spans, 1)
	require.Equal(t, "the process plants use to make food", spans[0].Text)
}

func TestOtherNeverMatches(t *testing.T) {
	require.False(t, Compatible(domain.CategoryOther, "Apple made 1,000 computers in 1984."))
	require.Empty(t, Spans(domain.CategoryOther, "Apple made 1,000 computers in 1984."))
}

func TestCompatible(t *testing.T) {
	require.True(t, Compatible(domain.CategoryPerson, "It was built by Apple."))
	require.False(t, Compatible(domain.CategoryNumber, "no digits anywhere"))
	require.True(t, Compatible(domain.CategoryDate, "back in 1984 it happened"))
}

func TestSpanOffsets(t *testing.T) {
	body := "The Macintosh was developed by Apple in 1984."
	for _, s := range Spans(domain.CategoryPerson, body) {
		require.Equal(t, s.Text, body[s.Offset:s.Offset+len(s.Text)])
	}
}
