package port

type Tokenizer interface {
	// Tokenize returns the filtered token sequence in source order.
	Tokenize(text string) []string

	CountTokens(text string) int

	StopwordVersion() string
}
