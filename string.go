package gyp

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

// parseString reads a quoted string at the cursor. Either quote character may
// open a literal and only the same character closes it. Literals separated by
// whitespace or comments are joined, so "foo" 'bar' reads as "foobar".
func parseString(input string, at int) (string, int, error) {
	var out strings.Builder
	for {
		next, err := parseQuoted(input, at, &out)
		if err != nil {
			return "", at, err
		}
		at = skipSpace(input, next)
		if q := peek(input, at); q != '"' && q != '\'' {
			return out.String(), at, nil
		}
	}
}

// parseQuoted decodes one literal into out and returns the offset after its
// closing quote.
func parseQuoted(input string, at int, out *strings.Builder) (int, error) {
	quote := peek(input, at)
	if quote != '"' && quote != '\'' {
		return at, newSyntaxError(input, at, ExpectedQuote)
	}
	at++

	for {
		if at >= len(input) {
			return at, newSyntaxError(input, at, UnexpectedEndOfInput)
		}
		c := input[at]
		switch {
		case rune(c) == quote:
			return at + 1, nil
		case c == '\\':
			next, err := parseEscapeSequence(input, at+1, out)
			if err != nil {
				return at, err
			}
			at = next
		default:
			// Copy runs of plain bytes, multi-byte sequences included.
			start := at
			for at < len(input) && input[at] != '\\' && rune(input[at]) != quote {
				at++
			}
			out.WriteString(input[start:at])
		}
	}
}

// parseEscapeSequence decodes the escape whose letter is at the cursor and
// returns the offset after it.
func parseEscapeSequence(input string, at int, out *strings.Builder) (int, error) {
	if at >= len(input) {
		return at, newSyntaxError(input, at, UnexpectedEndOfInput)
	}
	switch esc := input[at]; esc {
	case '"', '\'', '\\', '/':
		out.WriteByte(esc)
	case 'b':
		out.WriteByte('\b')
	case 'f':
		out.WriteByte('\f')
	case 'n':
		out.WriteByte('\n')
	case 'r':
		out.WriteByte('\r')
	case 't':
		out.WriteByte('\t')
	case 'u':
		return parseUnicodeEscape(input, at+1, out)
	case 'x':
		code, ok := parseHex(input, at+1, 2)
		if !ok {
			return at + 1, newSyntaxError(input, at+1, InvalidHexEscape)
		}
		out.WriteRune(code)
		return at + 3, nil
	default:
		return at, newSyntaxError(input, at, UnknownEscapeCharacter)
	}
	return at + 1, nil
}

// parseUnicodeEscape decodes the four hex digits of a \u escape at the cursor.
// A high surrogate immediately followed by a \u low surrogate yields the
// paired code point; any other surrogate yields U+FFFD.
func parseUnicodeEscape(input string, at int, out *strings.Builder) (int, error) {
	code, ok := parseHex(input, at, 4)
	if !ok {
		return at, newSyntaxError(input, at, InvalidHexEscape)
	}
	at += 4
	if !utf16.IsSurrogate(code) {
		out.WriteRune(code)
		return at, nil
	}
	if strings.HasPrefix(input[at:], `\u`) {
		if low, ok := parseHex(input, at+2, 4); ok {
			if r := utf16.DecodeRune(code, low); r != unicode.ReplacementChar {
				out.WriteRune(r)
				return at + 6, nil
			}
		}
	}
	out.WriteRune(unicode.ReplacementChar)
	return at, nil
}

// parseHex reads exactly n hex digits at the cursor.
func parseHex(input string, at, n int) (rune, bool) {
	if at+n > len(input) {
		return 0, false
	}
	digits := input[at : at+n]
	for i := 0; i < n; i++ {
		if !isHexDigit(rune(digits[i])) {
			return 0, false
		}
	}
	code, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(code), true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
