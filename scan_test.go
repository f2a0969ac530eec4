package gyp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipSpace(t *testing.T) {
	for _, tc := range []struct {
		input string
		at    int
		want  int
	}{
		{"", 0, 0},
		{"x", 0, 0},
		{"   x", 0, 3},
		{"\t\r\n x", 0, 4},
		{"# comment", 0, 9},
		{"# comment\nx", 0, 10},
		{"  # one\n  # two\n\n x", 0, 18},
		{"a  b", 1, 3},
		{"a#b\nc", 1, 4},
		{"\u00a0x", 0, 2},
		{"\uFEFF{}", 0, 3},
		{"\u3000x", 0, 3},
		{"x  ", 3, 3},
	} {
		assert.Equal(t, tc.want, skipSpace(tc.input, tc.at), "%q", tc.input)
	}
}

func TestPeek(t *testing.T) {
	assert.Equal(t, 'a', peek("abc", 0))
	assert.Equal(t, 'é', peek("xé", 1))
	assert.Equal(t, eof, peek("abc", 3))
	assert.Equal(t, eof, peek("", 0))
}
