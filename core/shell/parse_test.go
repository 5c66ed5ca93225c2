package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStr(t *testing.T) {
	cases := []struct {
		input    string
		expected string
		stopsOn  Token
	}{
		{"abc def", "abc", TokenSeparator},
		{"abc|def", "abc", TokenPipe},
		{"abc>def", "abc", TokenRedirect},
		{"abc", "abc", TokenEnd},
		{"", "", TokenEnd},
		{" abc", "", TokenSeparator},
		{"|abc", "", TokenPipe},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			cur := NewCursor(tc.input)
			assert.Equal(t, tc.expected, ParseStr(cur))
			assert.Equal(t, tc.stopsOn, Classify(cur.Current()))
		})
	}
}

func TestParseStrRescanIsEmpty(t *testing.T) {
	// A second scan from the position left by the first never
	// re-consumes input.
	cur := NewCursor("abc def")

	assert.Equal(t, "abc", ParseStr(cur))
	pos := cur.Pos()

	assert.Equal(t, "", ParseStr(cur))
	assert.Equal(t, pos, cur.Pos())
}

func TestNextCmd(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected Command
		stopsOn  Token
	}{
		{"single", "cmd1", Command{"cmd1"}, TokenEnd},
		{"args", "cmd1 a b", Command{"cmd1", "a", "b"}, TokenEnd},
		{"separator collapse", "cmd1   a    b", Command{"cmd1", "a", "b"}, TokenEnd},
		{"leading separators", "   cmd1", Command{"cmd1"}, TokenEnd},
		{"trailing separators", "cmd1   ", Command{"cmd1"}, TokenEnd},
		{"stops at pipe", "cmd1 a|cmd2", Command{"cmd1", "a"}, TokenPipe},
		{"stops at redirect", "cmd1>out", Command{"cmd1"}, TokenRedirect},
		{"empty", "", nil, TokenEnd},
		{"only separators", "    ", nil, TokenEnd},
		{"immediate pipe", "|cmd", nil, TokenPipe},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cur := NewCursor(tc.input)
			assert.Equal(t, tc.expected, NextCmd(cur))
			assert.Equal(t, tc.stopsOn, Classify(cur.Current()))
		})
	}
}

func TestParseJob(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		commands []Command
		redirect string
	}{
		{
			name:  "full pipeline with redirect",
			input: "cmd1 aaa    bbb     | cmd2 |cmd3|cmd4 xxx>out.txt",
			commands: []Command{
				{"cmd1", "aaa", "bbb"},
				{"cmd2"},
				{"cmd3"},
				{"cmd4", "xxx"},
			},
			redirect: "out.txt",
		},
		{
			name:     "redirect with surrounding spaces",
			input:    " cmd1 > out.txt",
			commands: []Command{{"cmd1"}},
			redirect: "out.txt",
		},
		{
			name:  "empty line",
			input: "",
		},
		{
			name:     "bare command",
			input:    "cmd1",
			commands: []Command{{"cmd1"}},
		},
		{
			name:     "dangling pipe",
			input:    "cmd1|",
			commands: []Command{{"cmd1"}},
		},
		{
			name:     "leading pipe",
			input:    "|cmd1",
			commands: []Command{{"cmd1"}},
		},
		{
			name:     "consecutive pipes drop the empty region",
			input:    "cmd1||cmd2",
			commands: []Command{{"cmd1"}, {"cmd2"}},
		},
		{
			name:     "separators around pipes",
			input:    "cmd1   |   cmd2",
			commands: []Command{{"cmd1"}, {"cmd2"}},
		},
		{
			name:     "dangling redirect",
			input:    "cmd1 >",
			commands: []Command{{"cmd1"}},
		},
		{
			name:     "redirect only",
			input:    ">out.txt",
			redirect: "out.txt",
		},
		{
			name:  "only separators",
			input: "      ",
		},
		{
			name:  "only pipes",
			input: "|||",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job := ParseJob(tc.input)

			assert.Equal(t, tc.commands, job.Commands)
			assert.Equal(t, tc.redirect, job.Redirect)
		})
	}
}

func TestParseJobSeparatorCollapse(t *testing.T) {
	assert.Equal(t, ParseJob("a b"), ParseJob("a  b"))
	assert.Equal(t, ParseJob("a b | c"), ParseJob("  a   b|c  "))
	assert.Equal(t, ParseJob("a > f"), ParseJob("a>f"))
}

func TestParseJobTotality(t *testing.T) {
	// Every input terminates and yields a structurally valid job:
	// no empty command is ever attached.
	inputs := []string{
		"", " ", "|", ">", "|>", ">|", "||||>>>>",
		"a|b|c|d|e>f", "   >   ", "a>>b", ">>",
		"\t", "\n", "a\nb", "a\tb|c",
	}

	for _, input := range inputs {
		job := ParseJob(input)
		for _, cmd := range job.Commands {
			assert.NotEmpty(t, cmd, "input %q produced an empty command", input)
		}
	}
}

func TestParseJobEmpty(t *testing.T) {
	assert.True(t, ParseJob("").Empty())
	assert.True(t, ParseJob("  |  ").Empty())
	assert.False(t, ParseJob("a").Empty())
	assert.False(t, ParseJob(">f").Empty())
}
