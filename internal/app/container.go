// Package app constructs the dependency graph for one invocation.
package app

import (
	"llm2sh/internal/application/run"
	"llm2sh/internal/domain"
	"llm2sh/internal/infrastructure/ai"
	"llm2sh/internal/infrastructure/config"
	contextcollector "llm2sh/internal/infrastructure/context"
	"llm2sh/internal/infrastructure/executor"
	"llm2sh/internal/pkg/logger"
	"llm2sh/internal/ports"
)

// Container holds the wired services. The terminal-facing adapters (renderer,
// prompter, clipboard) are attached by the CLI layer to keep this package
// free of presentation dependencies.
type Container struct {
	Service        *run.Service
	ConfigProvider ports.ConfigProvider
}

// BuildContainer wires the pipeline for the given config path and mode.
func BuildContainer(configPath string, mode domain.RunMode) (*Container, error) {
	loader := config.NewFileLoader(configPath)
	log := logger.NewStd(mode.Verbose)

	service := &run.Service{
		ConfigProvider:   loader,
		ContextCollector: contextcollector.NewCollector(),
		Executor:         executor.NewLocalExecutor("", mode.Verbose),
		Logger:           log,
		NewGeneratorFactory: func(cfg domain.Config) ports.GeneratorFactory {
			return ai.NewFactory(cfg)
		},
	}

	return &Container{
		Service:        service,
		ConfigProvider: loader,
	}, nil
}
