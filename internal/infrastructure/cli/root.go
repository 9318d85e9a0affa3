// Package cli wires the cobra command surface over the run pipeline.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"llm2sh/internal/app"
	"llm2sh/internal/domain"
)

// ExitError carries the process exit code for a failed plan. The failure has
// already been rendered by the time it propagates, so Execute does not print
// it again.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command failed with exit code %d", e.Code)
}

// Execute runs the root command and returns the process exit code: 0 for
// Completed and user-decline Aborted, the failing command's code for Failed,
// 1 for pipeline-level errors.
func Execute(ctx context.Context) int {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the single-command CLI: llm2sh [options] <request>.
func NewRootCmd() *cobra.Command {
	var (
		configPath  string
		model       string
		temperature float64
		dryRun      bool
		force       bool
		yolo        bool
		verbose     bool
		listModels  bool
		copyPlan    bool
	)

	root := &cobra.Command{
		Use:   "llm2sh [options] <request>",
		Short: "Ask an LLM to run shell commands",
		Long: "llm2sh turns a natural-language request into shell commands via a remote LLM,\n" +
			"shows them, and executes them after confirmation.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := domain.RunMode{
				Forced:  force || yolo,
				DryRun:  dryRun,
				Verbose: verbose,
			}
			container, err := app.BuildContainer(configPath, mode)
			if err != nil {
				return err
			}
			container.Service.Renderer = NewRenderer(nil)
			container.Service.Prompter = NewPrompter()
			container.Service.Clipboard = NewClipboard()

			if listModels {
				cfg, err := container.ConfigProvider.Load(cmd.Context())
				if err != nil {
					return err
				}
				RenderModelList(cfg, os.Stdout)
				return nil
			}

			if len(args) == 0 {
				return cmd.Help()
			}

			req := domain.RunRequest{
				Context:         cmd.Context(),
				Prompt:          strings.Join(args, " "),
				ModelOverride:   model,
				Mode:            mode,
				CopyToClipboard: copyPlan,
			}
			if cmd.Flags().Changed("temperature") {
				req.TemperatureOverride = &temperature
			}

			report, err := container.Service.Run(req)
			if err != nil {
				return err
			}
			if report.State == domain.StateFailed {
				return &ExitError{Code: report.ExitCode()}
			}
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/llm2sh/config.yaml)")
	flags.StringVarP(&model, "model", "m", "", "model to use: provider/model, a legacy alias, or \"local\"")
	flags.Float64VarP(&temperature, "temperature", "t", domain.DefaultTemperature, "sampling temperature in [0,2]")
	flags.BoolVarP(&dryRun, "dry-run", "d", false, "show the generated commands without running them")
	flags.BoolVarP(&force, "force", "f", false, "run the generated commands without confirmation")
	flags.BoolVar(&yolo, "yolo", false, "alias for --force")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print debug information and echo commands as they run")
	flags.BoolVarP(&listModels, "list-models", "l", false, "list supported providers and legacy aliases")
	flags.BoolVar(&copyPlan, "copy", false, "copy the generated commands to the clipboard")
	_ = flags.MarkHidden("yolo")

	return root
}
