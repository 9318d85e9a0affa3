// Package prompt assembles the system prompt and user message for one
// generation request. Construction is pure: no I/O, no side effects.
package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"llm2sh/internal/domain"
)

// systemTemplate is the instruction contract the extraction grammar in
// internal/extract depends on: one command per line, backslash continuations,
// commentary only as # comments. Changing one side requires changing the other.
const systemTemplate = `You are an AI helping the user perform tasks in a POSIX shell. The user gives you a request, and you generate one or more shell commands that fulfill it. You can use any shell constructs, including pipes, redirection, and loops, and any commands available on the system.

The operating system is {{.OS}}{{if .Distro}} ({{.Distro}}){{end}}. Use the package manager and tooling native to this system.
The user is logged in as ` + "`{{.User}}`" + ` and the current working directory is ` + "`{{.WorkingDir}}`" + `.
{{if .DirEntries}}
The current directory contains:
{{range .DirEntries}} - {{.}}
{{end}}{{end}}{{if .EnvNames}}
You can refer to the following environment variables:
{{range .EnvNames}} - {{.}}
{{end}}{{end}}
A multi-step task may require multiple commands; output them in the order they must run, exactly one command per line. Break an overly long command across lines only with a trailing backslash.

YOU MUST RESPOND WITH ONLY VALID SHELL COMMANDS. Do not wrap the response in quotes, backticks, or markdown fences, and do not add prose. If you need to provide commentary, put it in a shell comment (a line starting with #). Pay special attention to quoting and escaping: every line must be ready to paste directly into a terminal.`

var sysTmpl = template.Must(template.New("system").Parse(systemTemplate))

// Build assembles the generation request for a resolved model. The user
// message is the literal request string, unmodified. The temperature must lie
// within [MinTemperature, MaxTemperature].
func Build(spec domain.ModelSpec, pctx domain.PromptContext, request string, temperature float64) (domain.GenerationRequest, error) {
	if temperature < domain.MinTemperature || temperature > domain.MaxTemperature {
		return domain.GenerationRequest{}, fmt.Errorf("temperature %.2f out of range [%g, %g]",
			temperature, domain.MinTemperature, domain.MaxTemperature)
	}

	var buf bytes.Buffer
	if err := sysTmpl.Execute(&buf, pctx); err != nil {
		return domain.GenerationRequest{}, fmt.Errorf("render system prompt: %w", err)
	}

	return domain.GenerationRequest{
		Model:        spec,
		Temperature:  temperature,
		SystemPrompt: strings.TrimSpace(buf.String()),
		UserRequest:  request,
	}, nil
}
