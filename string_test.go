package gyp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  string
		end   int
	}{
		{`""`, "", 2},
		{`''`, "", 2},
		{`"abc"`, "abc", 5},
		{`'it"s'`, `it"s`, 6},
		{`"it's"`, "it's", 6},
		{`"a\"b"`, `a"b`, 6},
		{`'a\'b'`, "a'b", 6},
		{`"\\\/"`, `\/`, 6},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", 12},
		{`"A\u00e9"`, "Aé", 9},
		{`"\u4E2D"`, "中", 8},
		{`"\x41\x7e"`, "A~", 10},
		{`'\xe9'`, "é", 6},
		{`"\ud83d\ude00"`, "😀", 14},
		{`"\ud83dx"`, "\uFFFDx", 9},
		{`"\ude00\ud83d"`, "\uFFFD\uFFFD", 14},
		{`"na\u00efve"`, "naïve", 12},
		{"\"tab\there\"", "tab\there", 10},
		{`"foo" 'bar'`, "foobar", 11},
		{`"a"'b'"c"`, "abc", 9},
		{"'a' # joined\n 'b' ,", "ab", 18},
		{`"a" :`, "a", 4},
	} {
		got, end, err := parseString(tc.input, 0)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
		assert.Equal(t, tc.end, end, tc.input)
	}
}

func TestParseStringErrors(t *testing.T) {
	for _, tc := range []struct {
		input  string
		kind   ErrorKind
		offset int
	}{
		{`abc`, ExpectedQuote, 0},
		{``, ExpectedQuote, 0},
		{`"`, UnexpectedEndOfInput, 1},
		{`"abc`, UnexpectedEndOfInput, 4},
		{`"abc'`, UnexpectedEndOfInput, 5},
		{`"\`, UnexpectedEndOfInput, 2},
		{`"\u"`, InvalidHexEscape, 3},
		{`"\u00G1"`, InvalidHexEscape, 3},
		{`"\x"`, InvalidHexEscape, 3},
		{`"\xg0"`, InvalidHexEscape, 3},
		{`"\ud83d\uZZZZ"`, InvalidHexEscape, 9},
		{`"\q"`, UnknownEscapeCharacter, 2},
		{`"\0"`, UnknownEscapeCharacter, 2},
		{`"a" "b`, UnexpectedEndOfInput, 6},
		{`"a" "\z"`, UnknownEscapeCharacter, 6},
	} {
		_, _, err := parseString(tc.input, 0)
		var serr *SyntaxError
		require.True(t, errors.As(err, &serr), "%q: %v", tc.input, err)
		assert.Equal(t, tc.kind, serr.Kind, tc.input)
		assert.Equal(t, tc.offset, serr.Offset, tc.input)
	}
}

func TestParseHex(t *testing.T) {
	code, ok := parseHex("00e9", 0, 4)
	assert.True(t, ok)
	assert.Equal(t, 'é', code)

	code, ok = parseHex(`\x7F`, 2, 2)
	assert.True(t, ok)
	assert.Equal(t, rune(0x7f), code)

	_, ok = parseHex("12", 0, 4)
	assert.False(t, ok)
	_, ok = parseHex("+1", 0, 2)
	assert.False(t, ok)
}
