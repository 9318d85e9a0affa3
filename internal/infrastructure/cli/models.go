package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"llm2sh/internal/domain"
	"llm2sh/internal/registry"
)

// providerOrder fixes the display order for --list-models.
var providerOrder = []domain.Provider{
	domain.ProviderLocal,
	domain.ProviderOpenAI,
	domain.ProviderAnthropic,
	domain.ProviderGroq,
	domain.ProviderCerebras,
	domain.ProviderOpenRouter,
}

// RenderModelList prints the supported providers with their key availability
// and the legacy aliases kept for configurations predating the
// provider/model syntax.
func RenderModelList(cfg domain.Config, out io.Writer) {
	bold := color.New(color.Bold)

	bold.Fprintln(out, "Providers (use -m provider/model):")
	for _, provider := range providerOrder {
		fmt.Fprintf(out, "  %-12s %s\n", provider, providerStatus(cfg, provider))
	}

	bold.Fprintln(out, "\nLegacy model aliases:")
	aliases := registry.LegacyAliases()
	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	for _, alias := range names {
		fmt.Fprintf(out, "  %-24s -> %s\n", alias, aliases[alias])
	}
}

func providerStatus(cfg domain.Config, provider domain.Provider) string {
	if provider == domain.ProviderLocal {
		uri := cfg.LocalURI
		if uri == "" {
			uri = "http://localhost:5000/v1"
		}
		return fmt.Sprintf("Ready - %s", uri)
	}
	if cfg.APIKeyFor(provider) != "" {
		return "Ready"
	}
	return fmt.Sprintf("Requires %s", domain.KeyEnvVar(provider))
}
