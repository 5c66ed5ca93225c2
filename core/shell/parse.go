// Package shell parses one line of shell-like input into a pipeline
// job: commands joined by '|' with an optional '>' redirect target.
//
// The parser is a single forward pass over one cursor. Each byte is
// classified on the fly, nothing is buffered ahead and nothing is
// re-read. Parsing is total: every input string, including the empty
// string, terminates and produces a job.
package shell

import "strings"

// Command is one executable name plus its arguments, in the order they
// appeared on the line.
type Command []string

// Job is the parsed form of one pipeline line: the commands left to
// right, plus the output redirect target. An empty Redirect means the
// last command writes to standard output.
type Job struct {
	Commands []Command `json:"commands,omitempty"`
	Redirect string    `json:"redirect,omitempty"`
}

// Empty reports whether the job carries no commands and no redirect.
func (j Job) Empty() bool {
	return len(j.Commands) == 0 && j.Redirect == ""
}

// ParseStr consumes the content run under the cursor and returns it.
// The cursor is left on the first non-content byte, which is not
// consumed. The result is empty when the cursor already sits on a
// pipe, redirect, separator or the end of the line.
func ParseStr(cur *Cursor) string {
	var b strings.Builder
	for Classify(cur.Current()) == TokenContent {
		b.WriteByte(cur.Current())
		cur.Advance()
	}
	return b.String()
}

// skipSeparators advances past a run of separator bytes.
func skipSeparators(cur *Cursor) {
	for Classify(cur.Current()) == TokenSeparator {
		cur.Advance()
	}
}

// NextCmd consumes one command's arguments, collapsing separator runs
// between them. It stops on the first pipe, redirect or end-of-line
// byte without consuming it. The returned command may be empty; the
// caller decides whether an empty command is kept.
func NextCmd(cur *Cursor) Command {
	var cmd Command
	for {
		skipSeparators(cur)
		if arg := ParseStr(cur); arg != "" {
			cmd = append(cmd, arg)
		}
		if Classify(cur.Current()) != TokenSeparator {
			return cmd
		}
	}
}

// ParseJob parses one line into a Job.
//
// The grammar is:
//
//	Job     = Command ('|' Command)* ('>' Str)?
//	Command = Str (' ' Str)*
//	Str     = one or more bytes other than ' ', '|', '>' and end-of-line
//
// ParseJob is total: it terminates on every input and never reports an
// error. Malformed input degrades to a smaller job instead of failing;
// in particular, empty commands produced by consecutive, leading or
// trailing pipes are dropped.
func ParseJob(line string) Job {
	cur := NewCursor(line)

	var job Job
	for {
		skipSeparators(cur)
		if cmd := NextCmd(cur); len(cmd) > 0 {
			job.Commands = append(job.Commands, cmd)
		}
		if Classify(cur.Current()) != TokenPipe {
			break
		}
		cur.Advance()
	}

	if Classify(cur.Current()) == TokenRedirect {
		cur.Advance()
		skipSeparators(cur)
		job.Redirect = ParseStr(cur)
	}

	return job
}
