// Package match defines the surface patterns for each answer category.
// The passage retriever uses them to filter type-compatible passages and
// the answer extractor uses them to capture literal answer spans.
package match

import (
	"regexp"
	"strings"

	"qa/internal/domain"
)

// Span is a literal answer candidate found in a passage.
type Span struct {
	Text   string
	Offset int
}

var (
	properRun = regexp.MustCompile(`\p{Lu}[\p{L}'’.-]*(?:\s+\p{Lu}[\p{L}'’.-]*)*`)
	datePat   = regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\b(?:\s+\d{1,2}(?:st|nd|rd|th)?)?(?:,?\s+\d{4})?|\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b[12]\d{3}\b`)
	numberPat = regexp.MustCompile(`\b\d[\d,]*(?:\.\d+)?\b`)
	copulaPat = regexp.MustCompile(`\b(?:is|are|was|were)\s+([^.!?]+)`)
)

// Sentence-initial words that start a proper-noun run without being part
// of the entity itself.
var leadingFiller = map[string]struct{}{
	"The": {}, "A": {}, "An": {}, "In": {}, "On": {}, "At": {}, "It": {},
	"He": {}, "She": {}, "They": {}, "This": {}, "That": {}, "But": {},
	"And": {}, "When": {}, "Where": {}, "Who": {}, "What": {}, "Its": {},
}

// Compatible reports whether the text contains at least one span of the
// given category. OTHER matches nothing.
func Compatible(cat domain.Category, text string) bool {
	return len(Spans(cat, text)) > 0
}

// Spans returns the literal spans of the given category found in text,
// in order of occurrence.
func Spans(cat domain.Category, text string) []Span {
	switch cat {
	case domain.CategoryPerson, domain.CategoryLocation:
		return properSpans(text)
	case domain.CategoryDate:
		return regexSpans(datePat, text)
	case domain.CategoryNumber:
		return regexSpans(numberPat, text)
	case domain.CategoryDefinition:
		return definitionSpans(text)
	default:
		return nil
	}
}

func regexSpans(re *regexp.Regexp, text string) []Span {
	var out []Span
	for _, loc := range re.FindAllStringIndex(text, -1) {
		out = append(out, Span{Text: text[loc[0]:loc[1]], Offset: loc[0]})
	}
	return out
}

// properSpans finds runs of capitalized tokens and trims sentence-initial
// filler words that merely open the run.
func properSpans(text string) []Span {
	var out []Span
	for _, loc := range properRun.FindAllStringIndex(text, -1) {
		span := text[loc[0]:loc[1]]
		offset := loc[0]
		for {
			first, rest, found := strings.Cut(span, " ")
			if _, filler := leadingFiller[first]; !filler {
				break
			}
			if !found {
				span = ""
				break
			}
			offset += len(first) + 1
			span = rest
		}
		if span == "" {
			continue
		}
		out = append(out, Span{Text: span, Offset: offset})
	}
	return out
}

// definitionSpans captures the clause following a copula, up to the end of
// the sentence.
func definitionSpans(text string) []Span {
	var out []Span
	for _, loc := range copulaPat.FindAllStringSubmatchIndex(text, -1) {
		if loc[2] < 0 {
			continue
		}
		clause := strings.TrimSpace(text[loc[2]:loc[3]])
		if clause == "" {
			continue
		}
		out = append(out, Span{Text: clause, Offset: loc[2]})
	}
	return out
}
