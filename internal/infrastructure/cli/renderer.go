package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"llm2sh/internal/domain"
	"llm2sh/internal/ports"
)

// Renderer prints the plan and outcomes. The plan rendering is verbatim; it
// is the safety checkpoint the user confirms against.
type Renderer struct {
	out io.Writer
}

// NewRenderer builds a renderer; out nil means stdout.
func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{out: out}
}

// RenderPlan lists every command exactly as it will be passed to the shell.
func (r *Renderer) RenderPlan(plan domain.CommandPlan, dryRun bool) {
	header := color.New(color.FgCyan, color.Bold)
	if dryRun {
		header.Fprintln(r.out, "(Dry run) The model suggested these commands:")
	} else {
		header.Fprintln(r.out, "You are about to run the following commands:")
	}

	for _, command := range plan {
		for i, line := range strings.Split(command, "\n") {
			if i == 0 {
				fmt.Fprintf(r.out, "  $ %s\n", line)
			} else {
				fmt.Fprintf(r.out, "    %s\n", line)
			}
		}
	}
}

// RenderNothingToDo reports an empty plan.
func (r *Renderer) RenderNothingToDo() {
	color.New(color.FgYellow).Fprintln(r.out, "Nothing to do: the model returned no commands.")
}

// RenderFailure reports the command that stopped the plan.
func (r *Renderer) RenderFailure(outcome domain.ExecutionOutcome) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(r.out, "✗ command exited with code %d, remaining commands skipped\n", outcome.ExitCode)
	fmt.Fprintf(r.out, "  $ %s\n", strings.ReplaceAll(outcome.Command, "\n", "\n    "))
}

// RenderAborted reports a user decline.
func (r *Renderer) RenderAborted() {
	fmt.Fprintln(r.out, "Request canceled")
}

var _ ports.PlanRenderer = (*Renderer)(nil)
