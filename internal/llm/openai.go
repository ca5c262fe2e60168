package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	app_errors "talky/backend/internal/errors"
	"talky/backend/internal/model"
)

// OpenAIConfig holds what the OpenAI provider needs from process configuration.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

type openAIProvider struct {
	client *http.Client
	cfg    OpenAIConfig
}

// NewOpenAIProvider returns a Provider for any OpenAI-compatible
// chat-completions API. No client timeout is set; the request context
// decides how long a call may take.
func NewOpenAIProvider(cfg OpenAIConfig) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = "gpt-3.5-turbo"
	}
	return &openAIProvider{
		client: &http.Client{},
		cfg:    cfg,
	}
}

type chatCompletionRequest struct {
	Model       string           `json:"model"`
	Messages    []model.ChatTurn `json:"messages"`
	Temperature float64          `json:"temperature"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message model.ChatTurn `json:"message"`
	} `json:"choices"`
}

type openAIErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *openAIProvider) Complete(ctx context.Context, history []model.ChatTurn) (string, error) {
	if p.cfg.APIKey == "" {
		return "", app_errors.New(app_errors.ErrConfiguration,
			"OPENAI_API_KEY not found in .env file. Please add it to the backend .env file")
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       p.cfg.Model,
		Messages:    history,
		Temperature: p.cfg.Temperature,
		MaxTokens:   p.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", app_errors.Wrap(app_errors.ErrUpstream, fmt.Sprintf("OpenAI request failed: %v", err), err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", app_errors.Wrap(app_errors.ErrUpstream, "could not read OpenAI response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr openAIErrorBody
		msg := "OpenAI API error"
		if jsonErr := json.Unmarshal(bodyBytes, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return "", app_errors.New(app_errors.ErrUpstream, msg)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(bodyBytes, &completion); err != nil {
		return "", app_errors.Wrap(app_errors.ErrUpstream, "could not decode OpenAI response", err)
	}
	if len(completion.Choices) == 0 {
		return "", app_errors.New(app_errors.ErrUpstream, "OpenAI API returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
