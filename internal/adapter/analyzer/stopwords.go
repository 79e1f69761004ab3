package analyzer

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
)

//go:embed stopwords_es.txt
var spanishStopwordsData string

const versionPrefix = "# version:"

// StopwordSet is an immutable set of accent-stripped, lowercase stopwords.
// It is safe for concurrent readers.
type StopwordSet struct {
	words   map[string]struct{}
	version string
}

// NewStopwordSet builds a set from raw entries, normalizing each one with
// the same transform applied to tokens.
func NewStopwordSet(version string, entries []string) *StopwordSet {
	words := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		key := StripAccents(Lower(strings.TrimSpace(e)))
		if key == "" {
			continue
		}
		words[key] = struct{}{}
	}
	return &StopwordSet{words: words, version: version}
}

// ParseStopwords reads one entry per line. Blank lines and lines starting
// with '#' are skipped; a "# version: X" line sets the version.
func ParseStopwords(data string) *StopwordSet {
	var (
		entries []string
		version string
	)
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, versionPrefix):
			version = strings.TrimSpace(strings.TrimPrefix(line, versionPrefix))
		case strings.HasPrefix(line, "#"):
		default:
			entries = append(entries, line)
		}
	}
	return NewStopwordSet(version, entries)
}

var spanishStopwords = sync.OnceValue(func() *StopwordSet {
	return ParseStopwords(spanishStopwordsData)
})

// SpanishStopwords returns the process-wide embedded Spanish stopword set.
func SpanishStopwords() *StopwordSet {
	return spanishStopwords()
}

// Contains reports whether token, once accent-stripped and lowercased,
// is a stopword.
func (s *StopwordSet) Contains(token string) bool {
	if _, ok := s.words[token]; ok {
		return true
	}
	key := StripAccents(Lower(token))
	if key == token {
		return false
	}
	_, ok := s.words[key]
	return ok
}

func (s *StopwordSet) Len() int {
	return len(s.words)
}

func (s *StopwordSet) Version() string {
	return s.version
}
