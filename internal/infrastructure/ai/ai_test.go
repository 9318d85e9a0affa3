package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llm2sh/internal/domain"
)

func generationRequest(spec domain.ModelSpec) domain.GenerationRequest {
	return domain.GenerationRequest{
		Model:        spec,
		Temperature:  0.2,
		SystemPrompt: "You are a shell assistant.",
		UserRequest:  "list files",
	}
}

func TestOpenAIChatWireShape(t *testing.T) {
	var captured struct {
		auth string
		body map[string]interface{}
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &captured.body))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ls -la\n"}}]}`))
	}))
	defer srv.Close()

	spec := domain.ModelSpec{Provider: domain.ProviderOpenAI, ModelID: "gpt-4o", Family: domain.FamilyOpenAIChat}
	factory := NewFactory(
		domain.Config{OpenAIAPIKey: "sk-test"},
		WithEndpoint(domain.ProviderOpenAI, srv.URL),
	)

	gen, err := factory.ForModel(spec)
	require.NoError(t, err)

	result, err := gen.Generate(context.Background(), generationRequest(spec))
	require.NoError(t, err)
	assert.Equal(t, "ls -la", result.RawText)

	assert.Equal(t, "Bearer sk-test", captured.auth)
	assert.Equal(t, "gpt-4o", captured.body["model"])
	assert.Equal(t, 0.2, captured.body["temperature"])

	messages := captured.body["messages"].([]interface{})
	require.Len(t, messages, 2)
	system := messages[0].(map[string]interface{})
	user := messages[1].(map[string]interface{})
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, "You are a shell assistant.", system["content"])
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "list files", user["content"])
}

func TestClaudeMessagesWireShape(t *testing.T) {
	var captured struct {
		apiKey  string
		version string
		body    map[string]interface{}
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.apiKey = r.Header.Get("x-api-key")
		captured.version = r.Header.Get("anthropic-version")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &captured.body))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"uname -a"}]}`))
	}))
	defer srv.Close()

	spec := domain.ModelSpec{Provider: domain.ProviderAnthropic, ModelID: "claude-3-opus-20240229", Family: domain.FamilyClaudeMessages}
	factory := NewFactory(
		domain.Config{AnthropicAPIKey: "ak-test"},
		WithEndpoint(domain.ProviderAnthropic, srv.URL),
	)

	gen, err := factory.ForModel(spec)
	require.NoError(t, err)

	result, err := gen.Generate(context.Background(), generationRequest(spec))
	require.NoError(t, err)
	assert.Equal(t, "uname -a", result.RawText)

	assert.Equal(t, "ak-test", captured.apiKey)
	assert.Equal(t, "2023-06-01", captured.version)
	assert.Equal(t, "claude-3-opus-20240229", captured.body["model"])
	assert.Equal(t, float64(2000), captured.body["max_tokens"])
	assert.Equal(t, "You are a shell assistant.", captured.body["system"])

	messages := captured.body["messages"].([]interface{})
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]interface{})["role"])
}

func TestMissingKeyFailsBeforeAnyRequest(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	spec := domain.ModelSpec{Provider: domain.ProviderGroq, ModelID: "llama3-70b-8192", Family: domain.FamilyOpenAIChat}
	factory := NewFactory(domain.Config{}, WithEndpoint(domain.ProviderGroq, srv.URL))

	_, err := factory.ForModel(spec)
	require.Error(t, err)

	var precondition *domain.PreconditionError
	require.True(t, errors.As(err, &precondition))
	assert.Equal(t, domain.ProviderGroq, precondition.Provider)
	assert.Equal(t, "GROQ_API_KEY", precondition.EnvVar)
	assert.Zero(t, requests, "no HTTP request may be issued without a key")
}

func TestLocalGeneratorNeedsNoKey(t *testing.T) {
	var captured struct {
		auth  string
		model string
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.auth = r.Header.Get("Authorization")
		var body struct {
			Model string `json:"model"`
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		captured.model = body.Model
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"pwd"}}]}`))
	}))
	defer srv.Close()

	spec := domain.ModelSpec{Provider: domain.ProviderLocal, Family: domain.FamilyOpenAIChat}
	factory := NewFactory(domain.Config{
		LocalURI:       srv.URL + "/v1",
		LocalModelName: "Meta-Llama-3-8B",
	})

	gen, err := factory.ForModel(spec)
	require.NoError(t, err)

	result, err := gen.Generate(context.Background(), generationRequest(spec))
	require.NoError(t, err)
	assert.Equal(t, "pwd", result.RawText)
	assert.Empty(t, captured.auth, "local endpoint without key must not send Authorization")
	assert.Equal(t, "Meta-Llama-3-8B", captured.model, "bare local uses the configured model name")
}

func TestProviderErrorCarriesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"rate_limit_error"}}`))
	}))
	defer srv.Close()

	spec := domain.ModelSpec{Provider: domain.ProviderOpenAI, ModelID: "gpt-4o", Family: domain.FamilyOpenAIChat}
	factory := NewFactory(domain.Config{OpenAIAPIKey: "sk"}, WithEndpoint(domain.ProviderOpenAI, srv.URL))

	gen, err := factory.ForModel(spec)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), generationRequest(spec))
	require.Error(t, err)

	var provErr *domain.ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, http.StatusTooManyRequests, provErr.Status)
	assert.Equal(t, "rate limit exceeded", provErr.Message)
}

func TestMalformedResponseBodyIsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	spec := domain.ModelSpec{Provider: domain.ProviderOpenRouter, ModelID: "openai/gpt-4o", Family: domain.FamilyOpenAIChat}
	factory := NewFactory(domain.Config{OpenRouterAPIKey: "or"}, WithEndpoint(domain.ProviderOpenRouter, srv.URL))

	gen, err := factory.ForModel(spec)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), generationRequest(spec))
	var provErr *domain.ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "malformed response body", provErr.Message)
}
