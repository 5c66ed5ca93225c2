package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorEmptyInput(t *testing.T) {
	cur := NewCursor("")

	assert.Equal(t, EOL, cur.Current())
	assert.Equal(t, EOL, cur.Advance())
	assert.Equal(t, 0, cur.Pos())
}

func TestCursorAdvanceSaturates(t *testing.T) {
	cur := NewCursor("ab")

	assert.Equal(t, byte('a'), cur.Current())
	assert.Equal(t, byte('b'), cur.Advance())
	assert.Equal(t, EOL, cur.Advance())

	// Past the end the cursor stays put.
	for i := 0; i < 3; i++ {
		assert.Equal(t, EOL, cur.Advance())
	}
	assert.Equal(t, len("ab"), cur.Pos())
}

func TestClassify(t *testing.T) {
	cases := []struct {
		ch       byte
		expected Token
	}{
		{'|', TokenPipe},
		{'>', TokenRedirect},
		{' ', TokenSeparator},
		{'\n', TokenEnd},
		{'a', TokenContent},
		{'0', TokenContent},
		{'-', TokenContent},
		{'\t', TokenContent}, // only a plain space separates
		{'<', TokenContent},  // no input redirection operator
	}

	for _, tc := range cases {
		t.Run(string(rune(tc.ch)), func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.ch))
		})
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "pipe", TokenPipe.String())
	assert.Equal(t, "end", TokenEnd.String())
	assert.Equal(t, "unknown", Token(99).String())
}
