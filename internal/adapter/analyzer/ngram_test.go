package analyzer

import (
	"reflect"
	"testing"
)

func TestBuildNGrams(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		n        int
		expected []string
	}{
		{"bigrams", []string{"a", "b", "c", "d"}, 2, []string{"a b", "b c", "c d"}},
		{"trigrams", []string{"a", "b", "c", "d"}, 3, []string{"a b c", "b c d"}},
		{"window equals length", []string{"a", "b"}, 2, []string{"a b"}},
		{"too few tokens", []string{"a", "b"}, 3, nil},
		{"unigram size", []string{"a", "b"}, 1, nil},
		{"zero size", []string{"a", "b"}, 0, nil},
		{"negative size", []string{"a", "b"}, -2, nil},
		{"empty", nil, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildNGrams(tt.tokens, tt.n)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("BuildNGrams(%v, %d) = %v, want %v", tt.tokens, tt.n, got, tt.expected)
			}
		})
	}
}

func TestBuildNGrams_Count(t *testing.T) {
	tokens := make([]string, 50)
	for i := range tokens {
		tokens[i] = "w"
	}
	for n := 2; n <= 50; n++ {
		if got := len(BuildNGrams(tokens, n)); got != 50-n+1 {
			t.Errorf("n=%d: expected %d ngrams, got %d", n, 50-n+1, got)
		}
	}
}
