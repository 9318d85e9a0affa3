package ai

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"llm2sh/internal/domain"
)

const (
	anthropicVersion = "2023-06-01"

	// The messages API requires an output bound even when the caller does not
	// care about it; generously above any realistic command sequence.
	anthropicMaxTokens = 2000
)

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// claudeMessagesAdapter speaks the Anthropic messages shape: the system
// prompt travels in a dedicated field, not the messages array.
func claudeMessagesAdapter() wireAdapter {
	return wireAdapter{
		build:      buildAnthropicRequest,
		parse:      parseAnthropicResponse,
		setHeaders: setAnthropicHeaders,
	}
}

func buildAnthropicRequest(modelID string, req domain.GenerationRequest) ([]byte, error) {
	return json.Marshal(anthropicRequest{
		Model:       modelID,
		MaxTokens:   anthropicMaxTokens,
		Temperature: req.Temperature,
		System:      req.SystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: req.UserRequest},
		},
	})
}

func parseAnthropicResponse(body []byte) (string, error) {
	var response anthropicResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	for _, block := range response.Content {
		if block.Type == "text" {
			return strings.TrimRight(block.Text, "\n"), nil
		}
	}
	return "", fmt.Errorf("response contains no text block")
}

func setAnthropicHeaders(httpReq *http.Request, apiKey string) {
	httpReq.Header.Set("x-api-key", apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
}
