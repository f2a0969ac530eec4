package gyp

import (
	"fmt"
	"unicode/utf8"
)

// ErrorKind identifies which grammar rule a SyntaxError violated.
//
// ErrorKind implements error, so a kind can be matched with errors.Is:
//
//	if errors.Is(err, gyp.UnexpectedEndOfInput) { ... }
type ErrorKind int

const (
	ExpectedOpenBrace ErrorKind = iota + 1
	ExpectedCloseBrace
	ExpectedOpenBracket
	ExpectedCloseBracket
	ExpectedColon
	ExpectedCommaOrCloseBrace
	ExpectedCommaOrCloseBracket
	UnexpectedComma
	UnexpectedEndOfInput
	UnexpectedToken
	ExpectedQuote
	InvalidHexEscape
	UnknownEscapeCharacter
	ExpectedNumber
	ExpectedTrue
	ExpectedFalse
	ExpectedNull
	ExceededMaxDepth
	ExpectedEndOfInput
)

var kindNames = map[ErrorKind]string{
	ExpectedOpenBrace:           "ExpectedOpenBrace",
	ExpectedCloseBrace:          "ExpectedCloseBrace",
	ExpectedOpenBracket:         "ExpectedOpenBracket",
	ExpectedCloseBracket:        "ExpectedCloseBracket",
	ExpectedColon:               "ExpectedColon",
	ExpectedCommaOrCloseBrace:   "ExpectedCommaOrCloseBrace",
	ExpectedCommaOrCloseBracket: "ExpectedCommaOrCloseBracket",
	UnexpectedComma:             "UnexpectedComma",
	UnexpectedEndOfInput:        "UnexpectedEndOfInput",
	UnexpectedToken:             "UnexpectedToken",
	ExpectedQuote:               "ExpectedQuote",
	InvalidHexEscape:            "InvalidHexEscape",
	UnknownEscapeCharacter:      "UnknownEscapeCharacter",
	ExpectedNumber:              "ExpectedNumber",
	ExpectedTrue:                "ExpectedTrue",
	ExpectedFalse:               "ExpectedFalse",
	ExpectedNull:                "ExpectedNull",
	ExceededMaxDepth:            "ExceededMaxDepth",
	ExpectedEndOfInput:          "ExpectedEndOfInput",
}

var kindMessages = map[ErrorKind]string{
	ExpectedOpenBrace:           `Expected "{"`,
	ExpectedCloseBrace:          `Expected "}"`,
	ExpectedOpenBracket:         `Expected "["`,
	ExpectedCloseBracket:        `Expected "]"`,
	ExpectedColon:               `Expected ":"`,
	ExpectedCommaOrCloseBrace:   `Expected "," or "}"`,
	ExpectedCommaOrCloseBracket: `Expected "," or "]"`,
	UnexpectedComma:             `Unexpected ","`,
	UnexpectedEndOfInput:        "Unexpected end of input",
	UnexpectedToken:             "Unexpected token",
	ExpectedQuote:               `Expected ' or "`,
	InvalidHexEscape:            "Invalid hex escape",
	UnknownEscapeCharacter:      "Unknown escape character",
	ExpectedNumber:              "Expected number",
	ExpectedTrue:                `Expected "true"`,
	ExpectedFalse:               `Expected "false"`,
	ExpectedNull:                `Expected "null"`,
	ExceededMaxDepth:            "Exceeded maximum nesting depth",
	ExpectedEndOfInput:          "Expected end of input",
}

// String returns the name of the kind, e.g. "ExpectedColon".
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error returns the human-readable message for the kind, e.g. `Expected ":"`.
func (k ErrorKind) Error() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return k.String()
}

// contextRadius is the number of characters shown on each side of the
// failure offset.
const contextRadius = 6

// SyntaxError reports the first grammar violation found in the input.
type SyntaxError struct {
	Kind   ErrorKind
	Offset int // byte offset into the input

	input string
}

func newSyntaxError(input string, at int, kind ErrorKind) *SyntaxError {
	return &SyntaxError{Kind: kind, Offset: at, input: input}
}

// Error formats the error as
// `<message> around position <offset> (<before><<exact>><after>)`.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s around position %d (%s)", e.Kind.Error(), e.Offset, e.Context())
}

// Is reports whether target is the ErrorKind of e.
func (e *SyntaxError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

// Context renders up to six characters on either side of the failure offset,
// with the character at the offset enclosed in angle brackets. At the end of
// input the brackets are empty.
func (e *SyntaxError) Context() string {
	at := e.Offset
	if at > len(e.input) {
		at = len(e.input)
	}

	start := at
	for i := 0; i < contextRadius && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(e.input[:start])
		start -= size
	}

	exactEnd := at
	if at < len(e.input) {
		_, size := utf8.DecodeRuneInString(e.input[at:])
		exactEnd += size
	}

	end := exactEnd
	for i := 0; i < contextRadius && end < len(e.input); i++ {
		_, size := utf8.DecodeRuneInString(e.input[end:])
		end += size
	}

	return e.input[start:at] + "<" + e.input[at:exactEnd] + ">" + e.input[exactEnd:end]
}
