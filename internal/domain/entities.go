package domain

import (
	"errors"
	"time"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrEmptyDocument    = errors.New("document is empty")
	ErrDocumentTooLarge = errors.New("document exceeds maximum size")
)

// Document is an uploaded text. Content is held separately by the store.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	UploadedAt time.Time `json:"uploaded_at"`
	Size       int64     `json:"size"`
	Encoding   string    `json:"encoding"`
	Hash       string    `json:"hash"`
}

// FrequencyEntry is one ranked item of a frequency table.
type FrequencyEntry struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// ProcessingStats reports token counts for one analysis.
// OriginalTokenEstimate comes from a naive whitespace split of the raw text,
// so StopwordsRemovedEstimate is approximate and may be negative.
type ProcessingStats struct {
	OriginalTokenEstimate    int `json:"original_token_estimate"`
	FilteredTokenCount       int `json:"filtered_token_count"`
	StopwordsRemovedEstimate int `json:"stopwords_removed_estimate"`
}

type ProcessingResult struct {
	NGramSize           int              `json:"ngram_size"`
	TopUnigrams         []FrequencyEntry `json:"top_unigrams"`
	TopNGrams           []FrequencyEntry `json:"top_ngrams"`
	TotalFilteredTokens int              `json:"total_filtered_tokens"`
	Stats               ProcessingStats  `json:"stats"`
}

// ProcessingReport describes what the normalization pipeline did to a text.
type ProcessingReport struct {
	ProcessedText      string   `json:"processed_text"`
	OriginalWordCount  int      `json:"original_word_count"`
	FilteredTokenCount int      `json:"filtered_token_count"`
	StopwordsRemoved   int      `json:"stopwords_removed"`
	RemovedSymbols     []string `json:"removed_symbols"`
	AccentedWords      []string `json:"accented_words"`
	StopwordSetVersion string   `json:"stopword_set_version"`
}
