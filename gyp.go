// Package gyp decodes GYP documents.
//
// GYP is a generous, JSON-like notation for Python-style object literals. It
// is a superset of JSON that also allows:
//   - strings in single or double quotes, with adjacent literals joined
//     ("foo" 'bar' reads as "foobar")
//   - # line comments anywhere whitespace is allowed
//   - a leading + on numbers
//   - \xHH escapes beside JSON's \uHHHH
//
// Keys must still be quoted and trailing commas are rejected.
//
// The mapping between GYP and Go values is:
//   - null -> nil
//   - boolean -> bool
//   - number -> float64
//   - string -> string
//   - array -> []any
//   - object -> map[string]any (the last of duplicate keys wins)
//
// Errors are *SyntaxError values that carry the byte offset of the failure
// and a few characters of context on each side.
package gyp

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var defaultParser = &Parser{cfg: DefaultConfig(), logger: log.NewNopLogger()}

// Parse decodes the first value in input. Anything after the value and its
// trailing whitespace and comments is ignored; use ParsePrefix to find out
// where the value ended.
func Parse(input string) (any, error) {
	return defaultParser.Parse(input)
}

// Unmarshal decodes the first value in data. It is Parse for byte slices.
func Unmarshal(data []byte) (any, error) {
	return defaultParser.Parse(string(data))
}

// ParsePrefix decodes the first value in input and returns the offset just
// past it and any whitespace or comments that follow.
func ParsePrefix(input string) (any, int, error) {
	return defaultParser.ParsePrefix(input)
}

// Parser decodes GYP with a fixed Config. It is safe for concurrent use.
type Parser struct {
	cfg    Config
	logger log.Logger
}

// New returns a Parser for cfg. A nil logger discards debug output.
func New(cfg Config, logger log.Logger) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Parser{cfg: cfg, logger: log.With(logger, "component", "gyp")}, nil
}

// Parse decodes the first value in input. With DisallowTrailingContent set,
// anything but whitespace or comments after that value is an error.
func (p *Parser) Parse(input string) (any, error) {
	value, end, err := p.ParsePrefix(input)
	if err != nil {
		return nil, err
	}
	if p.cfg.DisallowTrailingContent && end < len(input) {
		err := newSyntaxError(input, end, ExpectedEndOfInput)
		level.Debug(p.logger).Log("msg", "trailing content", "kind", err.Kind.String(), "offset", err.Offset)
		return nil, err
	}
	return value, nil
}

// ParsePrefix decodes the first value in input and returns the offset just
// past it and any whitespace or comments that follow.
func (p *Parser) ParsePrefix(input string) (any, int, error) {
	d := &decoder{input: input, maxDepth: p.cfg.MaxDepth, logger: p.logger}
	value, end, err := d.parseElement(0, 0)
	if err != nil {
		if serr, ok := err.(*SyntaxError); ok {
			level.Debug(p.logger).Log("msg", "parse failed", "kind", serr.Kind.String(), "offset", serr.Offset)
		}
		return nil, 0, err
	}
	level.Debug(p.logger).Log("msg", "parsed", "end", end, "length", len(input))
	return value, end, nil
}
