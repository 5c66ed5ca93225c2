// Package present renders parsed jobs for humans and machines.
package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"sigs.k8s.io/yaml"

	"joblex.dev/joblex/core/shell"
)

var (
	commandColor  = color.New(color.FgCyan, color.Bold)
	redirectColor = color.New(color.FgYellow)
)

// Text renders a job in a stable line-oriented form, one command per
// line followed by the redirect target when one is present. The format
// is pinned by golden tests and consumed by the check command's
// mismatch reports.
func Text(job shell.Job) string {
	var b strings.Builder
	for i, cmd := range job.Commands {
		fmt.Fprintf(&b, "cmd %d: %s\n", i, strings.Join(cmd, " "))
	}
	if job.Redirect != "" {
		fmt.Fprintf(&b, "redirect: %s\n", job.Redirect)
	}
	if b.Len() == 0 {
		b.WriteString("(empty job)\n")
	}
	return b.String()
}

// Pretty writes a highlighted rendering of the job. Color is dropped
// automatically when the process is not attached to a terminal.
func Pretty(w io.Writer, job shell.Job) {
	if job.Empty() {
		fmt.Fprintln(w, "(empty job)")
		return
	}

	for i, cmd := range job.Commands {
		if i > 0 {
			fmt.Fprintln(w, "  |")
		}
		if len(cmd) > 1 {
			fmt.Fprintf(w, "%s %s\n", commandColor.Sprint(cmd[0]), strings.Join(cmd[1:], " "))
		} else {
			fmt.Fprintln(w, commandColor.Sprint(cmd[0]))
		}
	}

	if job.Redirect != "" {
		fmt.Fprintf(w, "  > %s\n", redirectColor.Sprint(job.Redirect))
	}
}

// Marshal renders the job as YAML for machine consumption.
func Marshal(job shell.Job) ([]byte, error) {
	return yaml.Marshal(job)
}
