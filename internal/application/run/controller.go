package run

import (
	"context"
	"fmt"

	"llm2sh/internal/domain"
	"llm2sh/internal/ports"
)

// Controller drives the confirm-and-execute state machine: Present, Confirm,
// Execute, with terminal states Aborted, Completed, and Failed. Presentation
// of the full command list, not execution, is the safety checkpoint: nothing
// runs that the user has not seen, except under an explicit force opt-in.
type Controller struct {
	Renderer ports.PlanRenderer
	Prompter ports.ConfirmationPrompter
	Executor ports.CommandExecutor

	// StandingForce mirrors the config-file opt-in that skips confirmation on
	// every invocation.
	StandingForce bool
}

// Run takes a plan through the state machine and returns the outcomes of the
// commands that actually executed.
func (c *Controller) Run(ctx context.Context, plan domain.CommandPlan, mode domain.RunMode) ([]domain.ExecutionOutcome, domain.RunState, error) {
	if plan.Empty() {
		c.Renderer.RenderNothingToDo()
		return nil, domain.StateAborted, nil
	}

	c.Renderer.RenderPlan(plan, mode.DryRun)

	if mode.DryRun {
		// Commands are shown but never run, regardless of force.
		return nil, domain.StateAborted, nil
	}

	if !mode.Forced && !c.StandingForce {
		confirmed, err := c.confirm(plan)
		if err != nil {
			return nil, domain.StateAborted, fmt.Errorf("confirm: %w", err)
		}
		if !confirmed {
			c.Renderer.RenderAborted()
			return nil, domain.StateAborted, nil
		}
	}

	return c.execute(ctx, plan)
}

// confirm blocks for a yes/no response. Anything other than an explicit
// affirmative, including an unusable prompter (no TTY), is a decline.
func (c *Controller) confirm(plan domain.CommandPlan) (bool, error) {
	if c.Prompter == nil || !c.Prompter.Enabled() {
		return false, nil
	}
	return c.Prompter.Confirm(plan)
}

// execute runs the plan in order, fail-fast: a non-zero exit stops the
// remaining commands. Already-run commands are not rolled back; generated
// commands may be stateful and irreversible, so compensation would be worse
// than stopping.
func (c *Controller) execute(ctx context.Context, plan domain.CommandPlan) ([]domain.ExecutionOutcome, domain.RunState, error) {
	outcomes := make([]domain.ExecutionOutcome, 0, len(plan))

	for _, command := range plan {
		outcome, err := c.Executor.Execute(ctx, command)
		if err != nil {
			outcome.Aborted = true
			outcomes = append(outcomes, outcome)
			return outcomes, domain.StateFailed, fmt.Errorf("execute %q: %w", command, err)
		}
		outcomes = append(outcomes, outcome)
		if outcome.ExitCode != 0 {
			c.Renderer.RenderFailure(outcome)
			return outcomes, domain.StateFailed, nil
		}
	}

	return outcomes, domain.StateCompleted, nil
}
