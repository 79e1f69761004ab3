package usecase

import (
	"strings"
	"unicode"

	"textfreq/internal/adapter/analyzer"
	"textfreq/internal/domain"
	"textfreq/internal/port"
)

// DefaultTopK is the number of ranked entries kept for presentation.
const DefaultTopK = 20

// maxAccentedWords bounds the accented-word sample of a processing report.
const maxAccentedWords = 20

// AnalyzeUseCase computes word and n-gram frequencies for a text.
// It holds no mutable state and may be shared across goroutines.
type AnalyzeUseCase struct {
	tokenizer port.Tokenizer
	topK      int
}

// NewAnalyzeUseCase creates a new analyze use case. topK <= 0 selects
// DefaultTopK.
func NewAnalyzeUseCase(tokenizer port.Tokenizer, topK int) *AnalyzeUseCase {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &AnalyzeUseCase{
		tokenizer: tokenizer,
		topK:      topK,
	}
}

// Analyze ranks unigrams and, when n > 1, n-grams of size n. Degenerate
// input yields empty tables and zero counts.
func (u *AnalyzeUseCase) Analyze(text string, n int) domain.ProcessingResult {
	return u.analyzeTokens(u.tokenizer.Tokenize(text), u.tokenizer.CountTokens(text), n)
}

// Compare runs Analyze once per distinct size, in the order given.
func (u *AnalyzeUseCase) Compare(text string, sizes []int) []domain.ProcessingResult {
	tokens := u.tokenizer.Tokenize(text)
	original := u.tokenizer.CountTokens(text)

	seen := make(map[int]bool, len(sizes))
	results := make([]domain.ProcessingResult, 0, len(sizes))
	for _, n := range sizes {
		if seen[n] {
			continue
		}
		seen[n] = true
		results = append(results, u.analyzeTokens(tokens, original, n))
	}
	return results
}

func (u *AnalyzeUseCase) analyzeTokens(tokens []string, originalCount int, n int) domain.ProcessingResult {
	result := domain.ProcessingResult{
		NGramSize:           n,
		TopUnigrams:         analyzer.CountItems(tokens).Top(u.topK),
		TopNGrams:           []domain.FrequencyEntry{},
		TotalFilteredTokens: len(tokens),
		Stats: domain.ProcessingStats{
			OriginalTokenEstimate:    originalCount,
			FilteredTokenCount:       len(tokens),
			StopwordsRemovedEstimate: originalCount - len(tokens),
		},
	}

	if n > 1 && len(tokens) >= n {
		result.TopNGrams = analyzer.CountItems(analyzer.BuildNGrams(tokens, n)).Top(u.topK)
	}

	return result
}

// Inspect reports what normalization did to text: the processed token
// stream, the symbols removed and the first accented words.
func (u *AnalyzeUseCase) Inspect(text string) domain.ProcessingReport {
	tokens := u.tokenizer.Tokenize(text)
	words := letterWords(analyzer.Lower(text))

	return domain.ProcessingReport{
		ProcessedText:      strings.Join(tokens, " "),
		OriginalWordCount:  len(words),
		FilteredTokenCount: len(tokens),
		StopwordsRemoved:   len(words) - len(tokens),
		RemovedSymbols:     removedSymbols(text),
		AccentedWords:      accentedWords(words, maxAccentedWords),
		StopwordSetVersion: u.tokenizer.StopwordVersion(),
	}
}

const spanishLetters = "áéíóúÁÉÍÓÚñÑüÜ"

// isReportWordRune matches letters, numbers of any kind and '_'. Combining
// marks are not word characters.
func isReportWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func isReportLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || strings.ContainsRune(spanishLetters, r)
}

// letterWords returns the word-character runs of text made only of ASCII
// letters and Spanish accented letters.
func letterWords(text string) []string {
	runs := strings.FieldsFunc(text, func(r rune) bool { return !isReportWordRune(r) })
	words := runs[:0]
	for _, run := range runs {
		if strings.IndexFunc(run, func(r rune) bool { return !isReportLetter(r) }) == -1 {
			words = append(words, run)
		}
	}
	return words
}

// removedSymbols lists, in first-appearance order, the characters of text
// that are neither word characters, whitespace nor Spanish letters.
func removedSymbols(text string) []string {
	seen := make(map[rune]bool)
	symbols := []string{}
	for _, r := range text {
		if isReportWordRune(r) || unicode.IsSpace(r) || strings.ContainsRune(spanishLetters, r) {
			continue
		}
		if !seen[r] {
			seen[r] = true
			symbols = append(symbols, string(r))
		}
	}
	return symbols
}

// accentedWords returns, in order and with repeats, the first limit words
// containing an accented letter, ñ or ü.
func accentedWords(words []string, limit int) []string {
	accented := []string{}
	for _, w := range words {
		if len(accented) >= limit {
			break
		}
		if strings.ContainsAny(w, spanishLetters) {
			accented = append(accented, w)
		}
	}
	return accented
}
