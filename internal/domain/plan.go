package domain

import "context"

// CommandPlan is the ordered list of shell commands extracted from a model
// response. Insertion order is execution order; commands may depend on side
// effects of earlier ones, so the plan is never sorted or deduplicated.
type CommandPlan []string

// Empty reports whether the plan contains no commands.
func (p CommandPlan) Empty() bool { return len(p) == 0 }

// Join renders the plan back into the newline form the extraction grammar
// accepts. Extraction of a joined plan is a fixed point.
func (p CommandPlan) Join() string {
	out := ""
	for i, cmd := range p {
		if i > 0 {
			out += "\n"
		}
		out += cmd
	}
	return out
}

// ExecutionOutcome records the result of one executed command.
type ExecutionOutcome struct {
	Command  string
	ExitCode int
	Aborted  bool
}

// RunState is the terminal state of one confirm-and-execute cycle.
type RunState string

const (
	// StateAborted means nothing was executed: empty plan, dry run, or the
	// user declined.
	StateAborted RunState = "aborted"
	// StateCompleted means every command ran and the last exit code was zero.
	StateCompleted RunState = "completed"
	// StateFailed means execution stopped early on a non-zero exit code.
	StateFailed RunState = "failed"
)

// RunMode carries the execution toggles from the CLI layer.
type RunMode struct {
	Forced  bool
	DryRun  bool
	Verbose bool
}

// RunRequest captures one end-to-end invocation of the pipeline.
type RunRequest struct {
	Context             context.Context
	Prompt              string
	ModelOverride       string
	TemperatureOverride *float64
	Mode                RunMode
	CopyToClipboard     bool
}

// RunReport is the canonical result propagated back to the CLI.
type RunReport struct {
	Model    ModelSpec
	RawReply string
	Plan     CommandPlan
	Outcomes []ExecutionOutcome
	State    RunState
}

// ExitCode maps the terminal state to the process exit code: zero for
// completion and user-decline aborts, the failing command's code otherwise.
func (r RunReport) ExitCode() int {
	if r.State != StateFailed {
		return 0
	}
	for _, outcome := range r.Outcomes {
		if outcome.ExitCode != 0 {
			return outcome.ExitCode
		}
	}
	return 1
}
