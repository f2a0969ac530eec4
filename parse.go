package gyp

import (
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// decoder holds what stays fixed for one parse. The cursor is never stored
// here; each production takes an offset and returns the next one.
type decoder struct {
	input    string
	maxDepth int
	logger   log.Logger
}

type member struct {
	key   string
	value any
}

// parseElement reads a value surrounded by optional whitespace and comments.
// The returned offset sits on the next significant character.
func (d *decoder) parseElement(at, depth int) (any, int, error) {
	at = skipSpace(d.input, at)
	value, at, err := d.parseValue(at, depth)
	if err != nil {
		return nil, at, err
	}
	return value, skipSpace(d.input, at), nil
}

// parseValue picks a production from the character at the cursor.
func (d *decoder) parseValue(at, depth int) (any, int, error) {
	switch c := peek(d.input, at); {
	case c == '{':
		return d.parseObject(at, depth+1)
	case c == '[':
		return d.parseArray(at, depth+1)
	case c == '"' || c == '\'':
		return parseString(d.input, at)
	case c == 't':
		return parseKeyword(d.input, at, "true", true, ExpectedTrue)
	case c == 'f':
		return parseKeyword(d.input, at, "false", false, ExpectedFalse)
	case c == 'n':
		return parseKeyword(d.input, at, "null", nil, ExpectedNull)
	case c == '-' || c == '+' || (c >= '0' && c <= '9'):
		return parseNumber(d.input, at)
	default:
		return nil, at, newSyntaxError(d.input, at, UnexpectedToken)
	}
}

// parseKeyword matches one of the literals true, false or null.
func parseKeyword(input string, at int, literal string, value any, kind ErrorKind) (any, int, error) {
	if !strings.HasPrefix(input[at:], literal) {
		return nil, at, newSyntaxError(input, at, kind)
	}
	return value, at + len(literal), nil
}

// enter checks the nesting limit for an object or array opening at the
// cursor.
func (d *decoder) enter(production string, at, depth int) error {
	level.Debug(d.logger).Log("msg", "enter", "production", production, "offset", at, "depth", depth)
	if d.maxDepth > 0 && depth > d.maxDepth {
		return newSyntaxError(d.input, at, ExceededMaxDepth)
	}
	return nil
}

func (d *decoder) parseObject(at, depth int) (any, int, error) {
	if peek(d.input, at) != '{' {
		return nil, at, newSyntaxError(d.input, at, ExpectedOpenBrace)
	}
	if err := d.enter("object", at, depth); err != nil {
		return nil, at, err
	}
	at = skipSpace(d.input, at+1)
	if peek(d.input, at) == '}' {
		return map[string]any{}, at + 1, nil
	}

	members, at, err := d.parseMembers(at, depth)
	if err != nil {
		return nil, at, err
	}
	if peek(d.input, at) != '}' {
		return nil, at, newSyntaxError(d.input, at, ExpectedCloseBrace)
	}

	obj := make(map[string]any, len(members))
	for _, m := range members {
		obj[m.key] = m.value
	}
	return obj, at + 1, nil
}

// parseMembers reads comma-separated members and stops on the closing brace
// without consuming it.
func (d *decoder) parseMembers(at, depth int) ([]member, int, error) {
	var members []member
	for {
		if peek(d.input, at) == ',' {
			return nil, at, newSyntaxError(d.input, at, UnexpectedComma)
		}
		m, next, err := d.parseMember(at, depth)
		if err != nil {
			return nil, next, err
		}
		members = append(members, m)
		at = next

		if at >= len(d.input) {
			return nil, at, newSyntaxError(d.input, at, UnexpectedEndOfInput)
		}
		at = skipSpace(d.input, at)
		switch peek(d.input, at) {
		case '}':
			return members, at, nil
		case ',':
			comma := at
			at = skipSpace(d.input, at+1)
			if peek(d.input, at) == '}' {
				return nil, comma, newSyntaxError(d.input, comma, UnexpectedComma)
			}
		default:
			return nil, at, newSyntaxError(d.input, at, ExpectedCommaOrCloseBrace)
		}
	}
}

// parseMember reads a quoted key, a colon and a value.
func (d *decoder) parseMember(at, depth int) (member, int, error) {
	at = skipSpace(d.input, at)
	key, at, err := parseString(d.input, at)
	if err != nil {
		return member{}, at, err
	}
	at = skipSpace(d.input, at)
	if peek(d.input, at) != ':' {
		return member{}, at, newSyntaxError(d.input, at, ExpectedColon)
	}
	value, at, err := d.parseElement(at+1, depth)
	if err != nil {
		return member{}, at, err
	}
	return member{key: key, value: value}, at, nil
}

func (d *decoder) parseArray(at, depth int) (any, int, error) {
	if peek(d.input, at) != '[' {
		return nil, at, newSyntaxError(d.input, at, ExpectedOpenBracket)
	}
	if err := d.enter("array", at, depth); err != nil {
		return nil, at, err
	}
	at = skipSpace(d.input, at+1)
	if peek(d.input, at) == ']' {
		return []any{}, at + 1, nil
	}

	elements, at, err := d.parseElements(at, depth)
	if err != nil {
		return nil, at, err
	}
	if peek(d.input, at) != ']' {
		return nil, at, newSyntaxError(d.input, at, ExpectedCloseBracket)
	}
	return elements, at + 1, nil
}

// parseElements reads comma-separated elements and stops on the closing
// bracket without consuming it.
func (d *decoder) parseElements(at, depth int) ([]any, int, error) {
	elements := []any{}
	for {
		if peek(d.input, at) == ',' {
			return nil, at, newSyntaxError(d.input, at, UnexpectedComma)
		}
		element, next, err := d.parseElement(at, depth)
		if err != nil {
			return nil, next, err
		}
		elements = append(elements, element)
		at = next

		if at >= len(d.input) {
			return nil, at, newSyntaxError(d.input, at, UnexpectedEndOfInput)
		}
		at = skipSpace(d.input, at)
		switch peek(d.input, at) {
		case ']':
			return elements, at, nil
		case ',':
			comma := at
			at = skipSpace(d.input, at+1)
			if peek(d.input, at) == ']' {
				return nil, comma, newSyntaxError(d.input, comma, UnexpectedComma)
			}
		default:
			return nil, at, newSyntaxError(d.input, at, ExpectedCommaOrCloseBracket)
		}
	}
}
