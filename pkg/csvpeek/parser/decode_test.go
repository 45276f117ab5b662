package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utf16LE(s string) []byte {
	out := []byte{0xFF, 0xFE}
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"plain", []byte("a,b\n1,2"), "a,b\n1,2"},
		{"utf8 bom", []byte("\xef\xbb\xbfa,b"), "a,b"},
		{"utf16le bom", utf16LE("a,b\n1,2"), "a,b\n1,2"},
		{"multibyte", []byte("名前,値"), "名前,値"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := Decode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	_, err := Decode([]byte("a,b\n1,\xff\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEncoding))

	var mie *MalformedInputError
	require.True(t, errors.As(err, &mie))
	assert.Equal(t, 2, mie.Line)
	assert.Equal(t, 3, mie.Column)
	assert.Equal(t, 6, mie.Offset)
}

func TestParseBytes(t *testing.T) {
	result, err := ParseBytes([]byte("\xef\xbb\xbfid,name\n1,x\n"), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, result.Table.ColumnNames())
	assert.Equal(t, 1, result.Table.NumRows())
}

func TestParseBytesChecksEncoding(t *testing.T) {
	raw := "a\n\xff\n"

	_, err := ParseBytes([]byte(raw), DefaultConfig())
	assert.True(t, errors.Is(err, ErrInvalidEncoding))

	// Parse trusts its input.
	result, err := Parse(raw, DefaultConfig())
	require.NoError(t, err)
	v, ok := result.Table.Column(0).Cell(0).Str()
	require.True(t, ok)
	assert.Equal(t, "\xff", v)
}
