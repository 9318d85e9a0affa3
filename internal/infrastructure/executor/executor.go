// Package executor runs generated commands on the host shell.
package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"llm2sh/internal/domain"
	"llm2sh/internal/ports"
)

// LocalExecutor spawns one subprocess per command. The child inherits the
// parent's standard streams directly rather than capture-and-relay, so
// password prompts and other TTY-dependent programs behave exactly as if the
// command had been typed into the shell. Exactly one child is active at a
// time; signals propagate to it through the shared terminal.
type LocalExecutor struct {
	shell   string
	verbose bool
}

// NewLocalExecutor builds an executor; shell defaults to $SHELL, then /bin/sh.
func NewLocalExecutor(shell string, verbose bool) *LocalExecutor {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &LocalExecutor{shell: shell, verbose: verbose}
}

// Execute runs a single command and blocks until it exits. The command string
// reaches the shell byte-for-byte; no quoting or escaping is applied.
func (e *LocalExecutor) Execute(ctx context.Context, command string) (domain.ExecutionOutcome, error) {
	if e.verbose {
		// Mirror the shell's xtrace output so the user can correlate output
		// with the command that produced it.
		fmt.Fprintf(os.Stderr, "+ %s\n", command)
	}

	cmd := exec.CommandContext(ctx, e.shell, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	outcome := domain.ExecutionOutcome{Command: command}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return outcome, nil
	case errors.As(err, &exitErr):
		outcome.ExitCode = exitErr.ExitCode()
		return outcome, nil
	default:
		// The command never ran (shell missing, context canceled).
		outcome.ExitCode = -1
		return outcome, fmt.Errorf("spawn %q: %w", command, err)
	}
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
