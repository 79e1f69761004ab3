package analyzer

import "strings"

// BuildNGrams slides a window of width n over tokens with stride 1 and joins
// each window with a single space. It returns nil for n <= 1 or when there
// are fewer than n tokens.
func BuildNGrams(tokens []string, n int) []string {
	if n <= 1 || len(tokens) < n {
		return nil
	}

	ngrams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		ngrams = append(ngrams, strings.Join(tokens[i:i+n], " "))
	}
	return ngrams
}
