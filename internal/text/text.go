// Package text holds the tokenizer, stopword list and synonym table shared
// by the pipeline stages. Tokenization must stay consistent between
// classifier training and inference, and between indexing and querying.
package text

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+`)

// Tokenize lowercases the input and returns its word and number tokens.
// Stopwords are kept; callers that want them removed use ContentTerms.
func Tokenize(s string) []string {
	return wordPattern.FindAllString(strings.ToLower(s), -1)
}

// Tokens returns the lowercased word and number tokens of s together with
// the byte offset of each token.
func Tokens(s string) ([]string, []int) {
	lower := strings.ToLower(s)
	spans := wordPattern.FindAllStringIndex(lower, -1)
	toks := make([]string, len(spans))
	offs := make([]int, len(spans))
	for i, sp := range spans {
		toks[i] = lower[sp[0]:sp[1]]
		offs[i] = sp[0]
	}
	return toks, offs
}

// ContentTerms tokenizes and removes stopwords and duplicates, preserving
// first-occurrence order.
func ContentTerms(s string) []string {
	tokens := Tokenize(s)
	if len(tokens) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := stopwords[t]; ok {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// IsStopword reports whether the lowercased token is a stopword.
func IsStopword(t string) bool {
	_, ok := stopwords[t]
	return ok
}

// Synonyms returns alternative terms for t, or nil when none are known.
// The table is small and static; ordering is fixed so candidate
// generation stays deterministic.
func Synonyms(t string) []string {
	return synonyms[t]
}

var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "this", "that",
		"these", "those", "from", "up", "down", "over", "under", "again",
		"further", "than", "so", "such", "into", "about", "between",
		"through", "during", "before", "after", "above", "below", "out",
		"off", "own", "same", "too", "very", "can", "will", "just",
		"don", "should", "now",
		// question words carry no content once the type is known
		"who", "whom", "whose", "what", "which", "where", "when", "why",
		"how", "did", "do", "does", "done",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

var synonyms = map[string][]string{
	"developed": {"created", "invented", "built"},
	"created":   {"developed", "invented"},
	"invented":  {"created", "developed"},
	"wrote":     {"authored", "penned"},
	"authored":  {"wrote"},
	"made":      {"built", "created"},
	"built":     {"made", "constructed"},
	"founded":   {"established", "started"},
	"located":   {"situated", "found"},
	"big":       {"large"},
	"large":     {"big"},
	"film":      {"movie"},
	"movie":     {"film"},
	"car":       {"automobile"},
	"city":      {"town"},
}
