package verify

import (
	"fmt"
	"io"
	"reflect"

	"github.com/fatih/color"

	"joblex.dev/joblex/core/shell"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

// Mismatch records one divergence between a case's expectation and the
// parsed job.
type Mismatch struct {
	Case     string
	Field    string
	Expected string
	Actual   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s: expected %s, got %s", m.Case, m.Field, m.Expected, m.Actual)
}

// Report is the outcome of running one suite.
type Report struct {
	Suite      string
	Cases      int
	Mismatches []Mismatch
}

// OK reports whether every case matched.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Write renders the report, one line per suite plus one line per
// mismatch.
func (r Report) Write(w io.Writer) {
	if r.OK() {
		passColor.Fprintf(w, "ok")
		fmt.Fprintf(w, "   %s: %d cases\n", r.Suite, r.Cases)
		return
	}

	failColor.Fprintf(w, "FAIL")
	fmt.Fprintf(w, " %s: %d of %d cases\n", r.Suite, r.failedCases(), r.Cases)
	for _, m := range r.Mismatches {
		fmt.Fprintf(w, "  %s\n", m)
	}
}

func (r Report) failedCases() int {
	seen := make(map[string]bool)
	for _, m := range r.Mismatches {
		seen[m.Case] = true
	}
	return len(seen)
}

// Run parses every case's input and compares the result against the
// expectation. Parsing itself cannot fail; the only failure mode is a
// job that differs from the one the case demands.
func (s *Suite) Run() Report {
	report := Report{Suite: s.Name}

	for _, tc := range s.Cases {
		report.Cases++
		job := shell.ParseJob(tc.Input)

		if expected, actual := normalize(tc.Commands), commandsOf(job); !reflect.DeepEqual(expected, actual) {
			report.Mismatches = append(report.Mismatches, Mismatch{
				Case:     tc.Name,
				Field:    "commands",
				Expected: fmt.Sprintf("%q", expected),
				Actual:   fmt.Sprintf("%q", actual),
			})
		}

		if job.Redirect != tc.Redirect {
			report.Mismatches = append(report.Mismatches, Mismatch{
				Case:     tc.Name,
				Field:    "redirect",
				Expected: fmt.Sprintf("%q", tc.Redirect),
				Actual:   fmt.Sprintf("%q", job.Redirect),
			})
		}
	}

	return report
}

func commandsOf(job shell.Job) [][]string {
	var out [][]string
	for _, cmd := range job.Commands {
		out = append(out, []string(cmd))
	}
	return out
}

// normalize maps the empty list to nil so YAML's `commands: []` and an
// omitted commands key compare equal.
func normalize(commands [][]string) [][]string {
	if len(commands) == 0 {
		return nil
	}
	return commands
}
