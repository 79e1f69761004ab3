package analyzer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters whose diacritic is kept through accent stripping, mapped to
// private-use code points while the rest of the text is decomposed.
var preserved = []struct {
	letter rune
	marker rune
}{
	{'ñ', '\uE000'},
	{'Ñ', '\uE001'},
	{'ü', '\uE002'},
	{'Ü', '\uE003'},
}

var (
	toMarker   = map[rune]rune{}
	fromMarker = map[rune]rune{}
)

func init() {
	for _, p := range preserved {
		toMarker[p.letter] = p.marker
		fromMarker[p.marker] = p.letter
	}
}

func isPreserved(r rune) bool {
	_, ok := toMarker[r]
	return ok
}

// StripAccents reduces accented letters to their base Latin letter while
// keeping ñ, Ñ, ü and Ü intact. Input is composed first so a decomposed
// n + U+0303 is kept as ñ too. Anything left outside ASCII after
// decomposition is dropped.
func StripAccents(text string) string {
	// Marker code points already in the input would be dropped as non-ASCII
	// residue anyway; removing them first keeps the round trip collision free.
	masked := strings.Map(func(r rune) rune {
		if _, isMarker := fromMarker[r]; isMarker {
			return -1
		}
		if m, ok := toMarker[r]; ok {
			return m
		}
		return r
	}, norm.NFC.String(text))

	// transform.Chain keeps internal state, so it is built per call.
	stripper := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool {
			_, isMarker := fromMarker[r]
			return r > unicode.MaxASCII && !isMarker
		})),
	)
	stripped, _, _ := transform.String(stripper, masked)

	return strings.Map(func(r rune) rune {
		if l, ok := fromMarker[r]; ok {
			return l
		}
		return r
	}, stripped)
}

// Lower applies Unicode-aware lowercasing.
func Lower(text string) string {
	return cases.Lower(language.Spanish).String(text)
}

// isWordRune matches the word character class plus the preserved letters.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || isPreserved(r)
}

// Normalize lowercases text, strips accents, turns every symbol into a
// separator and splits the result into raw tokens.
func Normalize(text string) []string {
	if text == "" {
		return nil
	}
	text = StripAccents(Lower(text))
	text = strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, text)
	return strings.Fields(text)
}
