package gyp

import (
	"unicode"
	"unicode/utf8"
)

// eof is returned by peek when the cursor is at or past the end of input.
const eof rune = -1

// peek returns the character at byte offset at, or eof.
func peek(input string, at int) rune {
	if at >= len(input) {
		return eof
	}
	if c := input[at]; c < utf8.RuneSelf {
		return rune(c)
	}
	r, _ := utf8.DecodeRuneInString(input[at:])
	return r
}

// isSpace reports whether r separates tokens. The byte-order mark counts as
// whitespace so that documents saved with one still parse.
func isSpace(r rune) bool {
	return r == '\uFEFF' || unicode.IsSpace(r)
}

// skipSpace advances past any run of whitespace and # line comments. A
// comment extends up to, but not including, the next newline.
func skipSpace(input string, at int) int {
	for at < len(input) {
		r, size := utf8.DecodeRuneInString(input[at:])
		switch {
		case r == '#':
			for at < len(input) && input[at] != '\n' {
				at++
			}
		case isSpace(r):
			at += size
		default:
			return at
		}
	}
	return at
}
