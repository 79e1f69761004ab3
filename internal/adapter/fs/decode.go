package fs

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const (
	EncodingUTF8        = "utf-8"
	EncodingUTF16       = "utf-16"
	EncodingWindows1252 = "windows-1252"
	EncodingLatin1      = "iso-8859-1"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeText converts raw document bytes to a UTF-8 string and reports the
// encoding it settled on. Valid UTF-8 is used as is (minus a BOM), UTF-16
// needs a BOM, and anything else falls back to Windows-1252 and finally
// ISO-8859-1, which accepts every byte.
func DecodeText(data []byte) (string, string) {
	if bytes.HasPrefix(data, bomUTF8) {
		data = data[len(bomUTF8):]
	}
	if bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		if text, err := dec.Bytes(data); err == nil {
			return string(text), EncodingUTF16
		}
	}
	if utf8.Valid(data) {
		return string(data), EncodingUTF8
	}

	fallbacks := []struct {
		name string
		enc  encoding.Encoding
	}{
		{EncodingWindows1252, charmap.Windows1252},
		{EncodingLatin1, charmap.ISO8859_1},
	}
	for _, fb := range fallbacks {
		text, err := fb.enc.NewDecoder().Bytes(data)
		if err == nil && !bytes.ContainsRune(text, utf8.RuneError) {
			return string(text), fb.name
		}
	}

	text, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(text), EncodingLatin1
}
