package ai

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"llm2sh/internal/domain"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// openAIChatAdapter speaks the OpenAI chat-completions shape, shared by
// OpenAI, Groq, Cerebras, OpenRouter, and OpenAI-compatible local servers.
func openAIChatAdapter() wireAdapter {
	return wireAdapter{
		build:      buildChatCompletionRequest,
		parse:      parseChatCompletionResponse,
		setHeaders: setBearerAuth,
	}
}

func buildChatCompletionRequest(modelID string, req domain.GenerationRequest) ([]byte, error) {
	return json.Marshal(chatCompletionRequest{
		Model:       modelID,
		Temperature: req.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserRequest},
		},
	})
}

func parseChatCompletionResponse(body []byte) (string, error) {
	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("response contains no choices")
	}
	return strings.TrimRight(response.Choices[0].Message.Content, "\n"), nil
}

// setBearerAuth sets standard Bearer authentication. Local endpoints may run
// without a key, in which case the header is omitted entirely.
func setBearerAuth(httpReq *http.Request, apiKey string) {
	if apiKey == "" {
		return
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
}
