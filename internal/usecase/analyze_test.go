package usecase

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	"textfreq/internal/adapter/analyzer"
	"textfreq/internal/domain"
)

func newAnalyzer() *AnalyzeUseCase {
	return NewAnalyzeUseCase(analyzer.NewTokenizer(nil), 0)
}

func items(entries []domain.FrequencyEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = fmt.Sprintf("%s:%d", e.Item, e.Count)
	}
	return out
}

func TestAnalyze_EndToEnd(t *testing.T) {
	result := newAnalyzer().Analyze("El veloz zorro marrón salta. ¡Qué salto!", 2)

	expectedUnigrams := []string{"veloz:1", "zorro:1", "marron:1", "salta:1", "salto:1"}
	if got := items(result.TopUnigrams); !reflect.DeepEqual(got, expectedUnigrams) {
		t.Errorf("expected unigrams %v, got %v", expectedUnigrams, got)
	}

	expectedBigrams := []string{"veloz zorro:1", "zorro marron:1", "marron salta:1", "salta salto:1"}
	if got := items(result.TopNGrams); !reflect.DeepEqual(got, expectedBigrams) {
		t.Errorf("expected bigrams %v, got %v", expectedBigrams, got)
	}

	if result.TotalFilteredTokens != 5 {
		t.Errorf("expected 5 filtered tokens, got %d", result.TotalFilteredTokens)
	}
	want := domain.ProcessingStats{OriginalTokenEstimate: 7, FilteredTokenCount: 5, StopwordsRemovedEstimate: 2}
	if result.Stats != want {
		t.Errorf("expected stats %+v, got %+v", want, result.Stats)
	}
	if result.NGramSize != 2 {
		t.Errorf("expected ngram size 2, got %d", result.NGramSize)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	result := newAnalyzer().Analyze("", 5)

	if len(result.TopUnigrams) != 0 || len(result.TopNGrams) != 0 {
		t.Errorf("expected empty tables, got %+v", result)
	}
	if result.TotalFilteredTokens != 0 || result.Stats != (domain.ProcessingStats{}) {
		t.Errorf("expected zero counts, got %+v", result)
	}
	if result.TopUnigrams == nil || result.TopNGrams == nil {
		t.Error("tables should be empty slices, not nil")
	}
}

func TestAnalyze_StopwordSymmetry(t *testing.T) {
	result := newAnalyzer().Analyze("que QUE qué", 1)

	if len(result.TopUnigrams) != 0 {
		t.Errorf("expected zero unigrams, got %v", items(result.TopUnigrams))
	}
	if result.Stats.StopwordsRemovedEstimate != 3 {
		t.Errorf("expected 3 removed, got %d", result.Stats.StopwordsRemovedEstimate)
	}
}

func TestAnalyze_Ranking(t *testing.T) {
	result := newAnalyzer().Analyze("gato perro gato ratón perro gato", 1)

	expected := []string{"gato:3", "perro:2", "raton:1"}
	if got := items(result.TopUnigrams); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestAnalyze_RepeatedBigrams(t *testing.T) {
	result := newAnalyzer().Analyze("buenos días amigo, buenos días señor", 2)

	expected := []string{"buenos dias:2", "dias amigo:1", "amigo buenos:1", "dias señor:1"}
	if got := items(result.TopNGrams); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestAnalyze_DegenerateNGramSizes(t *testing.T) {
	uc := newAnalyzer()
	text := "casa perro gato"

	for _, n := range []int{-1, 0, 1, 4, 100} {
		result := uc.Analyze(text, n)
		if len(result.TopNGrams) != 0 {
			t.Errorf("n=%d: expected no ngrams, got %v", n, items(result.TopNGrams))
		}
		if len(result.TopUnigrams) != 3 {
			t.Errorf("n=%d: expected unigrams to be computed, got %v", n, items(result.TopUnigrams))
		}
	}

	if got := len(uc.Analyze(text, 3).TopNGrams); got != 1 {
		t.Errorf("n equal to token count should yield one ngram, got %d", got)
	}
}

func TestAnalyze_TopKLimit(t *testing.T) {
	var words []string
	for i := 0; i < 30; i++ {
		words = append(words, fmt.Sprintf("palabra%02d", i))
	}
	text := strings.Join(words, " ")

	result := newAnalyzer().Analyze(text, 2)
	if len(result.TopUnigrams) != DefaultTopK {
		t.Errorf("expected %d unigrams, got %d", DefaultTopK, len(result.TopUnigrams))
	}
	if len(result.TopNGrams) != DefaultTopK {
		t.Errorf("expected %d ngrams, got %d", DefaultTopK, len(result.TopNGrams))
	}
	if result.TotalFilteredTokens != 30 {
		t.Errorf("total must count every filtered token, got %d", result.TotalFilteredTokens)
	}

	small := NewAnalyzeUseCase(analyzer.NewTokenizer(nil), 5).Analyze(text, 1)
	if len(small.TopUnigrams) != 5 {
		t.Errorf("expected custom top-k of 5, got %d", len(small.TopUnigrams))
	}
}

func TestAnalyze_Monotonicity(t *testing.T) {
	uc := newAnalyzer()
	inputs := []string{
		"el perro y la casa",
		"a b c palabra",
		"Los niños juegan en el parque con una pelota",
	}
	for _, in := range inputs {
		stats := uc.Analyze(in, 1).Stats
		if stats.FilteredTokenCount > stats.OriginalTokenEstimate {
			t.Errorf("%q: filtered %d > original %d", in, stats.FilteredTokenCount, stats.OriginalTokenEstimate)
		}
	}
}

func TestAnalyze_Concurrent(t *testing.T) {
	uc := newAnalyzer()
	text := "El veloz zorro marrón salta sobre el perro perezoso"
	expected := uc.Analyze(text, 2)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := uc.Analyze(text, 2); !reflect.DeepEqual(got, expected) {
				t.Errorf("concurrent result differs: %+v", got)
			}
		}()
	}
	wg.Wait()
}

func TestCompare(t *testing.T) {
	uc := newAnalyzer()
	text := "uno dos tres cuatro cinco"

	results := uc.Compare(text, []int{2, 2, 3, 1})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	sizes := []int{results[0].NGramSize, results[1].NGramSize, results[2].NGramSize}
	if !reflect.DeepEqual(sizes, []int{2, 3, 1}) {
		t.Errorf("expected sizes [2 3 1], got %v", sizes)
	}
	for _, r := range results {
		if !reflect.DeepEqual(r, uc.Analyze(text, r.NGramSize)) {
			t.Errorf("compare result for n=%d differs from Analyze", r.NGramSize)
		}
	}
}

func TestInspect(t *testing.T) {
	report := newAnalyzer().Inspect("¡Hola! El niño comió pingüino, año 2024.")

	if report.ProcessedText != "hola niño comio pingüino año 2024" {
		t.Errorf("unexpected processed text %q", report.ProcessedText)
	}
	if report.OriginalWordCount != 6 {
		t.Errorf("expected 6 original words, got %d", report.OriginalWordCount)
	}
	if report.FilteredTokenCount != 6 || report.StopwordsRemoved != 0 {
		t.Errorf("unexpected counts %+v", report)
	}
	if want := []string{"¡", "!", ",", "."}; !reflect.DeepEqual(report.RemovedSymbols, want) {
		t.Errorf("expected symbols %v, got %v", want, report.RemovedSymbols)
	}
	if want := []string{"niño", "comió", "pingüino", "año"}; !reflect.DeepEqual(report.AccentedWords, want) {
		t.Errorf("expected accented words %v, got %v", want, report.AccentedWords)
	}
	if report.StopwordSetVersion == "" {
		t.Error("expected stopword set version")
	}
}

func TestInspect_LimitsAccentedWords(t *testing.T) {
	var words []string
	for i := 0; i < 30; i++ {
		words = append(words, "canción"+strings.Repeat("a", i))
	}
	report := newAnalyzer().Inspect(strings.Join(words, " "))
	if len(report.AccentedWords) != maxAccentedWords {
		t.Errorf("expected %d accented words, got %d", maxAccentedWords, len(report.AccentedWords))
	}
}

func TestInspect_AccentedWordsKeepRepeats(t *testing.T) {
	report := newAnalyzer().Inspect("Canción, canción y más canción. Árbol")
	want := []string{"canción", "canción", "más", "canción", "árbol"}
	if !reflect.DeepEqual(report.AccentedWords, want) {
		t.Errorf("expected accented words %v, got %v", want, report.AccentedWords)
	}
}

func TestRemovedSymbols(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"punctuation", "¡Hola, mundo!", []string{"¡", ",", "!"}},
		{"numbers are word characters", "½ taza y Ⅻ capítulos", []string{}},
		{"combining marks are symbols", "cafe\u0301 listo", []string{"\u0301"}},
		{"repeats listed once", "a.b.c;d", []string{".", ";"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := removedSymbols(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("removedSymbols(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLetterWords(t *testing.T) {
	got := letterWords("abc1 àb hola_mundo canción, ñu 42 cafe\u0301s")
	expected := []string{"canción", "ñu", "cafe", "s"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}
