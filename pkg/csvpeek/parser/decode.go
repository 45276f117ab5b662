package parser

import (
	"unicode/utf8"

	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode turns raw file bytes into text. A UTF-8 or UTF-16 byte-order mark
// selects the encoding and is stripped; without one the bytes must be UTF-8.
func Decode(data []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), data)
	if err != nil {
		return "", NewMalformedInputError(1, 1, 0, ErrInvalidEncoding)
	}
	if !utf8.Valid(out) {
		line, col, off := invalidPosition(out)
		return "", NewMalformedInputError(line, col, off, ErrInvalidEncoding)
	}
	return string(out), nil
}

// ParseBytes decodes data and parses it.
func ParseBytes(data []byte, cfg Config) (*models.Result, error) {
	text, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Parse(text, cfg)
}

// invalidPosition locates the first invalid UTF-8 sequence.
func invalidPosition(b []byte) (line, col, off int) {
	line, lineStart := 1, 0
	for off < len(b) {
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		if r == '\n' {
			line++
			lineStart = off + size
		}
		off += size
	}
	return line, off - lineStart + 1, off
}
