package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

func TestStripAccents(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"áéíóú", "aeiou"},
		{"ÁÉÍÓÚ", "AEIOU"},
		{"àèìòù âêîôû", "aeiou aeiou"},
		{"ñ Ñ ü Ü", "ñ Ñ ü Ü"},
		{"pingüino Ñandú", "pingüino Ñandu"},
		{"ñandu", "ñandu"},
		{"ﬁn", "fin"},
		{"日本 hola", " hola"},
		{"abc", "abc"},
		{"plain ascii 123", "plain ascii 123"},
	}

	for _, tt := range tests {
		if got := StripAccents(tt.input); got != tt.expected {
			t.Errorf("StripAccents(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"only punctuation", "¡¿...!? -- ;;", nil},
		{"lowercases and strips", "Canción ÁRBOL", []string{"cancion", "arbol"}},
		{"punctuation separates words", "hola,mundo.adiós", []string{"hola", "mundo", "adios"}},
		{"digits retained", "año 2024: 3,5%", []string{"año", "2024", "3", "5"}},
		{"underscore is a word char", "snake_case", []string{"snake_case"}},
		{"exception letters preserved", "ÑANDÚ Pingüino ÜBER", []string{"ñandu", "pingüino", "über"}},
		{"whitespace collapsed", "  uno\t\tdos\n\ntres  ", []string{"uno", "dos", "tres"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"el veloz zorro marron salta",
		"ñandu pingüino 42 snake_case",
		"uno   dos\ttres",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(strings.Join(once, " "))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("normalize not idempotent for %q: %v vs %v", in, once, twice)
		}
		if !reflect.DeepEqual(once, strings.Fields(in)) {
			t.Errorf("normalized text changed: %q -> %v", in, once)
		}
	}
}

func TestNormalize_PreservesExceptionLetters(t *testing.T) {
	for _, in := range []string{"ñ", "Ñ", "ü", "Ü", "mañana", "CIGÜEÑA", "vergüenza"} {
		for _, token := range Normalize(in) {
			if strings.ContainsAny(in, "ñÑ") && !strings.ContainsRune(token, 'ñ') {
				t.Errorf("lost ñ in %q -> %q", in, token)
			}
			if strings.ContainsAny(in, "üÜ") && !strings.ContainsRune(token, 'ü') {
				t.Errorf("lost ü in %q -> %q", in, token)
			}
		}
	}
}

func TestStripAccents_MarkerCodePointsInInput(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"\uE000x\uE002 ñ", "x ñ"},
		{"\uE001\uE003", ""},
		{"a\uE000ñ\uE002ü", "añü"},
		{"\uE000n\u0303", "ñ"},
	}

	for _, tt := range tests {
		if got := StripAccents(tt.input); got != tt.expected {
			t.Errorf("StripAccents(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}

	if got := Normalize("\uE000x\uE002 ñ"); !reflect.DeepEqual(got, []string{"x", "ñ"}) {
		t.Errorf("Normalize with marker code points = %v, want [x ñ]", got)
	}
}

func TestNormalize_DecomposedInput(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"man\u0303ana", []string{"mañana"}},
		{"pingu\u0308ino", []string{"pingüino"}},
		{"N\u0303ANDU\u0301", []string{"ñandu"}},
		{"cancio\u0301n", []string{"cancion"}},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
