// Package config loads the YAML configuration from
// ~/.config/llm2sh/config.yaml, overridable via LLM2SH_CONFIG or the -c flag.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"llm2sh/internal/domain"
	"llm2sh/internal/ports"
)

// FileLoader reads the config file, creating it with defaults on first run.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a loader; path "" means the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is not an error: the
// defaults are written back so the user has something to edit. The file is
// also rewritten after a successful load so newly added fields appear in it;
// write failures are swallowed since the location may be read-only.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			writeBack(path, cfg)
			return cfg, nil
		}
		return domain.Config{}, err
	}

	cfg, err := parse(data)
	if err != nil {
		return domain.Config{}, err
	}
	writeBack(path, cfg)
	return cfg, nil
}

// parse unmarshals the file and applies the legacy claude_api_key spelling
// used by configurations predating the anthropic rename.
func parse(data []byte) (domain.Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	if cfg.AnthropicAPIKey == "" {
		var legacy struct {
			ClaudeAPIKey string `yaml:"claude_api_key"`
		}
		if err := yaml.Unmarshal(data, &legacy); err == nil {
			cfg.AnthropicAPIKey = legacy.ClaudeAPIKey
		}
	}
	return cfg, nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := os.Getenv("LLM2SH_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".config", "llm2sh", "config.yaml")
}

func writeBack(path string, cfg domain.Config) {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(path, raw, 0o600)
}

func defaultConfig() domain.Config {
	return domain.Config{
		DefaultModel: "openai/gpt-4o",
		Temperature:  domain.DefaultTemperature,
		LocalURI:     "http://localhost:5000/v1",
	}
}

func expandPath(path string) string {
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
