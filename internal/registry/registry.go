// Package registry resolves user-supplied model strings into concrete
// provider/model/endpoint-family tuples, including the legacy short-name
// aliases that predate the provider/model syntax.
package registry

import (
	"strings"

	"llm2sh/internal/domain"
)

// legacyAliases maps historical short names to canonical provider/model
// strings. Initialized once, never mutated after load.
var legacyAliases = map[string]string{
	"gpt-4o":                 "openai/gpt-4o",
	"gpt-4-turbo":            "openai/gpt-4-turbo",
	"gpt-3.5-turbo-instruct": "openai/gpt-3.5-turbo-instruct",

	"claude-3-opus":   "anthropic/claude-3-opus-20240229",
	"claude-3-sonnet": "anthropic/claude-3-sonnet-20240229",
	"claude-3-haiku":  "anthropic/claude-3-haiku-20240307",

	"groq-llama3-8b":    "groq/llama3-8b-8192",
	"groq-llama3-70b":   "groq/llama3-70b-8192",
	"groq-mixtral-8x7b": "groq/mixtral-8x7b-32768",
	"groq-gemma-7b":     "groq/gemma-7b-it",
}

// LegacyAliases returns a copy of the alias table for display purposes.
func LegacyAliases() map[string]string {
	out := make(map[string]string, len(legacyAliases))
	for alias, canonical := range legacyAliases {
		out[alias] = canonical
	}
	return out
}

// Resolve turns a raw model string into a ModelSpec. Resolution is total for
// any non-empty string under the alias table or provider/model syntax;
// anything else yields a *domain.ResolutionError. Resolving an already
// canonical string is a no-op lookup, so Resolve is idempotent.
func Resolve(raw string) (domain.ModelSpec, error) {
	if canonical, ok := legacyAliases[raw]; ok {
		raw = canonical
	}

	if raw == string(domain.ProviderLocal) {
		return domain.ModelSpec{Provider: domain.ProviderLocal, Family: domain.FamilyOpenAIChat}, nil
	}

	providerSegment, modelID, found := strings.Cut(raw, "/")
	if !found || providerSegment == "" {
		return domain.ModelSpec{}, &domain.ResolutionError{Kind: domain.MalformedModelString, Input: raw}
	}

	provider, ok := parseProvider(providerSegment)
	if !ok {
		return domain.ModelSpec{}, &domain.ResolutionError{Kind: domain.UnknownProvider, Input: raw}
	}

	// Everything past the first separator is the provider-native model ID,
	// embedded slashes included (e.g. openrouter/openai/gpt-4o).
	return domain.ModelSpec{
		Provider: provider,
		ModelID:  modelID,
		Family:   familyFor(provider),
	}, nil
}

func parseProvider(segment string) (domain.Provider, bool) {
	switch strings.ToLower(segment) {
	case "openai":
		return domain.ProviderOpenAI, true
	case "anthropic", "claude":
		return domain.ProviderAnthropic, true
	case "groq":
		return domain.ProviderGroq, true
	case "cerebras":
		return domain.ProviderCerebras, true
	case "openrouter":
		return domain.ProviderOpenRouter, true
	case "local":
		return domain.ProviderLocal, true
	default:
		return "", false
	}
}

func familyFor(provider domain.Provider) domain.EndpointFamily {
	if provider == domain.ProviderAnthropic {
		return domain.FamilyClaudeMessages
	}
	return domain.FamilyOpenAIChat
}
