// Package ai implements the provider client: it normalizes the heterogeneous
// LLM HTTP APIs into the single request/response contract the pipeline uses.
//
// Two wire families cover every supported provider. OpenAI, Groq, Cerebras,
// OpenRouter, and OpenAI-compatible local servers speak the chat-completions
// shape; Anthropic speaks the messages shape. Each family is one adapter on a
// shared HTTP provider, dispatched by the resolved endpoint family, so adding
// a provider that reuses an existing shape is a table entry, not a new client.
package ai

import (
	"net/http"
	"strings"
	"time"

	"llm2sh/internal/domain"
	"llm2sh/internal/ports"
)

const httpClientTimeout = 60 * time.Second

// defaultEndpoints maps each remote provider to its public API endpoint.
// Local endpoints come from configuration instead.
var defaultEndpoints = map[domain.Provider]string{
	domain.ProviderOpenAI:     "https://api.openai.com/v1/chat/completions",
	domain.ProviderGroq:       "https://api.groq.com/openai/v1/chat/completions",
	domain.ProviderCerebras:   "https://api.cerebras.ai/v1/chat/completions",
	domain.ProviderOpenRouter: "https://openrouter.ai/api/v1/chat/completions",
	domain.ProviderAnthropic:  "https://api.anthropic.com/v1/messages",
}

const defaultLocalURI = "http://localhost:5000/v1"

// Factory creates generators for resolved models. It holds a single HTTP
// client shared across providers and checks key preconditions up front so a
// missing key fails before any network I/O.
type Factory struct {
	cfg        domain.Config
	httpClient *http.Client
	endpoints  map[domain.Provider]string
}

// Option customizes a Factory; used by tests to point at local servers.
type Option func(*Factory)

// WithHTTPClient replaces the default 60-second-timeout client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Factory) { f.httpClient = client }
}

// WithEndpoint overrides the endpoint used for one provider.
func WithEndpoint(provider domain.Provider, url string) Option {
	return func(f *Factory) { f.endpoints[provider] = url }
}

// NewFactory builds a provider factory over the loaded configuration.
func NewFactory(cfg domain.Config, opts ...Option) *Factory {
	f := &Factory{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: httpClientTimeout},
		endpoints:  make(map[domain.Provider]string, len(defaultEndpoints)),
	}
	for provider, url := range defaultEndpoints {
		f.endpoints[provider] = url
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ForModel returns a generator for the resolved model, or a
// *domain.PreconditionError when the provider requires a key that is absent.
func (f *Factory) ForModel(spec domain.ModelSpec) (ports.Generator, error) {
	key := f.cfg.APIKeyFor(spec.Provider)
	if key == "" && domain.RequiresAPIKey(spec.Provider) {
		return nil, &domain.PreconditionError{
			Provider: spec.Provider,
			EnvVar:   domain.KeyEnvVar(spec.Provider),
		}
	}

	modelID := spec.ModelID
	if spec.Provider == domain.ProviderLocal && modelID == "" {
		modelID = f.cfg.LocalModelName
	}

	var adapter wireAdapter
	switch spec.Family {
	case domain.FamilyClaudeMessages:
		adapter = claudeMessagesAdapter()
	default:
		adapter = openAIChatAdapter()
	}

	return &httpGenerator{
		provider:   spec.Provider,
		modelID:    modelID,
		endpoint:   f.endpointFor(spec.Provider),
		apiKey:     key,
		httpClient: f.httpClient,
		adapter:    adapter,
	}, nil
}

func (f *Factory) endpointFor(provider domain.Provider) string {
	if provider == domain.ProviderLocal {
		uri := f.cfg.LocalURI
		if uri == "" {
			uri = defaultLocalURI
		}
		return strings.TrimRight(uri, "/") + "/chat/completions"
	}
	return f.endpoints[provider]
}

var _ ports.GeneratorFactory = (*Factory)(nil)
