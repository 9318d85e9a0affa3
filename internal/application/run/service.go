// Package run orchestrates one end-to-end invocation: resolve the model,
// collect context, build the prompt, call the provider, extract commands, and
// drive the confirm-and-execute loop. Control flow is strictly linear; the
// only loop is the controller iterating commands.
package run

import (
	"context"
	"fmt"

	"llm2sh/internal/domain"
	"llm2sh/internal/extract"
	"llm2sh/internal/ports"
	"llm2sh/internal/prompt"
	"llm2sh/internal/registry"
)

// Service wires the pipeline stages together. Every dependency is a port so
// tests can substitute stubs stage by stage.
type Service struct {
	ConfigProvider   ports.ConfigProvider
	ContextCollector ports.ContextCollector
	GeneratorFactory ports.GeneratorFactory
	Renderer         ports.PlanRenderer
	Prompter         ports.ConfirmationPrompter
	Executor         ports.CommandExecutor
	Clipboard        ports.Clipboard
	Logger           ports.Logger

	// NewGeneratorFactory lets the container defer factory construction until
	// the config is loaded. When nil, GeneratorFactory is used as-is.
	NewGeneratorFactory func(domain.Config) ports.GeneratorFactory
}

// Run processes a single natural-language request.
func (s *Service) Run(req domain.RunRequest) (domain.RunReport, error) {
	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.RunReport{}, fmt.Errorf("load config: %w", err)
	}

	spec, err := s.resolveModel(cfg, req.ModelOverride)
	if err != nil {
		return domain.RunReport{}, err
	}
	report := domain.RunReport{Model: spec, State: domain.StateAborted}

	pctx, err := s.ContextCollector.Collect(ctx)
	if err != nil {
		return report, fmt.Errorf("collect context: %w", err)
	}

	genReq, err := prompt.Build(spec, pctx, req.Prompt, s.temperature(cfg, req))
	if err != nil {
		return report, fmt.Errorf("build prompt: %w", err)
	}
	s.Logger.Debug("system prompt", map[string]interface{}{"prompt": genReq.SystemPrompt})

	factory := s.GeneratorFactory
	if s.NewGeneratorFactory != nil {
		factory = s.NewGeneratorFactory(cfg)
	}
	generator, err := factory.ForModel(spec)
	if err != nil {
		return report, err
	}

	s.Logger.Info("calling provider", map[string]interface{}{
		"provider": generator.Name(),
		"model":    spec.ModelID,
	})

	result, err := generator.Generate(ctx, genReq)
	if err != nil {
		return report, fmt.Errorf("generate: %w", err)
	}
	report.RawReply = result.RawText
	s.Logger.Debug("raw model output", map[string]interface{}{"response": result.RawText})

	report.Plan = extract.Commands(result.RawText)

	if req.CopyToClipboard && s.Clipboard != nil && s.Clipboard.Enabled() && !report.Plan.Empty() {
		if err := s.Clipboard.Copy(report.Plan.Join()); err != nil {
			s.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
		}
	}

	controller := &Controller{
		Renderer:      s.Renderer,
		Prompter:      s.Prompter,
		Executor:      s.Executor,
		StandingForce: cfg.ILikeToLiveDangerously,
	}
	outcomes, state, err := controller.Run(ctx, report.Plan, req.Mode)
	report.Outcomes = outcomes
	report.State = state
	return report, err
}

func (s *Service) resolveModel(cfg domain.Config, override string) (domain.ModelSpec, error) {
	raw := override
	if raw == "" {
		raw = cfg.DefaultModel
	}
	if raw == "" {
		raw = "openai/gpt-4o"
	}
	return registry.Resolve(raw)
}

func (s *Service) temperature(cfg domain.Config, req domain.RunRequest) float64 {
	if req.TemperatureOverride != nil {
		return *req.TemperatureOverride
	}
	return cfg.EffectiveTemperature()
}
