package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"llm2sh/internal/domain"
	"llm2sh/internal/ports"
)

// httpGenerator sends one synchronous request per invocation: no retries, no
// backoff, no streaming. The full response body is buffered before returning.
type httpGenerator struct {
	provider   domain.Provider
	modelID    string
	endpoint   string
	apiKey     string
	httpClient *http.Client
	adapter    wireAdapter
}

// wireAdapter captures the differences between the two wire families.
type wireAdapter struct {
	build      func(modelID string, req domain.GenerationRequest) ([]byte, error)
	parse      func(body []byte) (string, error)
	setHeaders func(httpReq *http.Request, apiKey string)
}

func (g *httpGenerator) Name() string {
	return string(g.provider)
}

func (g *httpGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (domain.GenerationResult, error) {
	body, err := g.adapter.build(g.modelID, req)
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("build request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	g.adapter.setHeaders(httpReq, g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return domain.GenerationResult{}, &domain.ProviderError{Provider: g.provider, Err: err}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.GenerationResult{}, &domain.ProviderError{Provider: g.provider, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.GenerationResult{}, &domain.ProviderError{
			Provider: g.provider,
			Status:   resp.StatusCode,
			Message:  providerMessage(responseBody),
		}
	}

	text, err := g.adapter.parse(responseBody)
	if err != nil {
		return domain.GenerationResult{}, &domain.ProviderError{Provider: g.provider, Message: "malformed response body", Err: err}
	}

	return domain.GenerationResult{RawText: text}, nil
}

// providerMessage pulls the human-readable error out of a failure body. Both
// wire families report errors under an "error" object; the message may sit in
// "message" directly or as a bare string.
func providerMessage(body []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return ""
	}

	var withMessage struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &withMessage); err == nil && withMessage.Message != "" {
		return withMessage.Message
	}

	var plain string
	if err := json.Unmarshal(envelope.Error, &plain); err == nil {
		return plain
	}
	return ""
}

var _ ports.Generator = (*httpGenerator)(nil)
