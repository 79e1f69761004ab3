package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer normalizes text and removes stopwords and single-character tokens.
type Tokenizer struct {
	stopwords *StopwordSet
}

// NewTokenizer creates a new Tokenizer. A nil set selects the embedded
// Spanish stopwords.
func NewTokenizer(stopwords *StopwordSet) *Tokenizer {
	if stopwords == nil {
		stopwords = SpanishStopwords()
	}
	return &Tokenizer{stopwords: stopwords}
}

// Tokenize returns the filtered token sequence of text, in source order.
func (t *Tokenizer) Tokenize(text string) []string {
	return t.Filter(Normalize(text))
}

// Filter drops stopwords and tokens of a single character, preserving the
// order of the survivors.
func (t *Tokenizer) Filter(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if utf8.RuneCountInString(token) < 2 {
			continue
		}
		if t.stopwords.Contains(token) {
			continue
		}
		filtered = append(filtered, token)
	}
	return filtered
}

// CountTokens returns the naive whitespace token count of the raw text.
// It is only an estimate: the raw text is not normalized first. The
// information separators U+001C..U+001F count as whitespace.
func (t *Tokenizer) CountTokens(text string) int {
	return len(strings.FieldsFunc(text, isSplitSpace))
}

func isSplitSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

func (t *Tokenizer) StopwordVersion() string {
	return t.stopwords.Version()
}
