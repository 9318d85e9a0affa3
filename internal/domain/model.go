// Package domain defines the core entities and value objects of llm2sh.
//
// The domain layer is independent of infrastructure concerns: it knows nothing
// about HTTP, cobra, or the filesystem. Everything here is a plain value that
// the pipeline stages pass between each other.
package domain

// Provider identifies a supported LLM backend.
type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderAnthropic  Provider = "anthropic"
	ProviderGroq       Provider = "groq"
	ProviderCerebras   Provider = "cerebras"
	ProviderOpenRouter Provider = "openrouter"
	ProviderLocal      Provider = "local"
)

// EndpointFamily selects the wire format used to talk to a provider.
// The set is closed: every supported provider speaks one of these two shapes.
type EndpointFamily string

const (
	// FamilyOpenAIChat is the OpenAI chat-completions shape, also spoken by
	// Groq, Cerebras, OpenRouter and OpenAI-compatible local servers.
	FamilyOpenAIChat EndpointFamily = "openai-chat"
	// FamilyClaudeMessages is the Anthropic messages shape.
	FamilyClaudeMessages EndpointFamily = "claude-messages"
)

// ModelSpec is the resolved identity of a model. Immutable once resolved.
type ModelSpec struct {
	Provider Provider
	ModelID  string
	Family   EndpointFamily
}

// String renders the spec back into provider/model form.
func (s ModelSpec) String() string {
	if s.ModelID == "" {
		return string(s.Provider)
	}
	return string(s.Provider) + "/" + s.ModelID
}

// Temperature bounds accepted by every provider family.
const (
	MinTemperature     = 0.0
	MaxTemperature     = 2.0
	DefaultTemperature = 0.2
)

// GenerationRequest carries everything a provider needs for one completion.
// Immutable value; constructed by the prompt builder.
type GenerationRequest struct {
	Model        ModelSpec
	Temperature  float64
	SystemPrompt string
	UserRequest  string
}

// GenerationResult holds the raw text returned by the model, before any
// command extraction.
type GenerationResult struct {
	RawText string
}
