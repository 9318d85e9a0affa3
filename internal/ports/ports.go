// Package ports defines the interfaces between the application core and the
// infrastructure adapters. The application depends on these abstractions only;
// concrete implementations live under internal/infrastructure.
package ports

import (
	"context"

	"llm2sh/internal/domain"
)

// ConfigProvider loads the configuration for the current invocation.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ContextCollector gathers the bounded environment snapshot injected into the
// system prompt. Implementations must apply domain.MaxContextEntries uniformly
// and must never collect environment-variable values or file contents.
type ContextCollector interface {
	Collect(context.Context) (domain.PromptContext, error)
}

// GeneratorFactory builds a generator for a resolved model. Key preconditions
// are checked here so that a missing key fails before any network I/O.
type GeneratorFactory interface {
	ForModel(domain.ModelSpec) (Generator, error)
}

// Generator sends one generation request to a provider and returns the raw
// model output. One synchronous HTTP round trip, no retries, no streaming.
type Generator interface {
	Name() string
	Generate(context.Context, domain.GenerationRequest) (domain.GenerationResult, error)
}

// CommandExecutor runs a single shell command with the parent's standard
// streams inherited, so interactive programs behave as if typed directly.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionOutcome, error)
}

// ConfirmationPrompter obtains the user's yes/no decision for a plan.
// Enabled reports whether the prompter can interact at all; a disabled
// prompter is treated as a decline.
type ConfirmationPrompter interface {
	Confirm(plan domain.CommandPlan) (bool, error)
	Enabled() bool
}

// PlanRenderer presents the plan to the user verbatim before confirmation.
// This rendering, not execution, is the safety checkpoint.
type PlanRenderer interface {
	RenderPlan(plan domain.CommandPlan, dryRun bool)
	RenderNothingToDo()
	RenderAborted()
	RenderFailure(outcome domain.ExecutionOutcome)
}

// Clipboard copies generated commands for reuse outside the terminal.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// Logger is the verbose-gated logging abstraction used across the pipeline.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
