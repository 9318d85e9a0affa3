package domain

import "os"

// Config mirrors ~/.config/llm2sh/config.yaml.
type Config struct {
	DefaultModel string  `yaml:"default_model"`
	Temperature  float64 `yaml:"temperature"`

	OpenAIAPIKey     string `yaml:"openai_api_key"`
	AnthropicAPIKey  string `yaml:"anthropic_api_key"`
	GroqAPIKey       string `yaml:"groq_api_key"`
	CerebrasAPIKey   string `yaml:"cerebras_api_key"`
	OpenRouterAPIKey string `yaml:"openrouter_api_key"`

	LocalURI       string `yaml:"local_uri"`
	LocalAPIKey    string `yaml:"local_api_key"`
	LocalModelName string `yaml:"local_model_name"`

	// Standing force mode: skip confirmation on every invocation.
	ILikeToLiveDangerously bool `yaml:"i_like_to_live_dangerously"`
}

// keyEnvVars names the environment variable consulted when the config file
// carries no key for a provider.
var keyEnvVars = map[Provider]string{
	ProviderOpenAI:     "OPENAI_API_KEY",
	ProviderAnthropic:  "ANTHROPIC_API_KEY",
	ProviderGroq:       "GROQ_API_KEY",
	ProviderCerebras:   "CEREBRAS_API_KEY",
	ProviderOpenRouter: "OPENROUTER_API_KEY",
}

// KeyEnvVar returns the environment variable name associated with a provider,
// or "" for providers that require no key.
func KeyEnvVar(p Provider) string {
	return keyEnvVars[p]
}

// RequiresAPIKey reports whether a provider refuses unauthenticated requests.
// Local endpoints are user-defined and may or may not want a key.
func RequiresAPIKey(p Provider) bool {
	return p != ProviderLocal
}

// APIKeyFor resolves the effective key for a provider: the config file value
// wins, the per-provider environment variable is the fallback.
func (c Config) APIKeyFor(p Provider) string {
	var fromFile string
	switch p {
	case ProviderOpenAI:
		fromFile = c.OpenAIAPIKey
	case ProviderAnthropic:
		fromFile = c.AnthropicAPIKey
	case ProviderGroq:
		fromFile = c.GroqAPIKey
	case ProviderCerebras:
		fromFile = c.CerebrasAPIKey
	case ProviderOpenRouter:
		fromFile = c.OpenRouterAPIKey
	case ProviderLocal:
		fromFile = c.LocalAPIKey
	}
	if fromFile != "" {
		return fromFile
	}
	if env := keyEnvVars[p]; env != "" {
		return os.Getenv(env)
	}
	return ""
}

// EffectiveTemperature returns the configured sampling temperature, falling
// back to the conservative default that favors literal command output.
func (c Config) EffectiveTemperature() float64 {
	if c.Temperature == 0 {
		return DefaultTemperature
	}
	return c.Temperature
}
