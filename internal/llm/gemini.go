package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	app_errors "talky/backend/internal/errors"
	"talky/backend/internal/model"
)

// GeminiConfig holds what the Gemini provider needs from process configuration.
type GeminiConfig struct {
	APIKey       string
	Model        string
	SystemPrompt string
	// ClientOptions are appended after the API key, e.g. a custom endpoint.
	ClientOptions []option.ClientOption
}

type geminiProvider struct {
	cfg GeminiConfig
}

// NewGeminiProvider returns a Provider backed by the Gemini chat API. A
// missing key is not an error here; it is reported on every Complete call so
// the relay can start without credentials.
func NewGeminiProvider(cfg GeminiConfig) Provider {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	return &geminiProvider{cfg: cfg}
}

func (p *geminiProvider) Complete(ctx context.Context, history []model.ChatTurn) (string, error) {
	if p.cfg.APIKey == "" {
		return "", app_errors.New(app_errors.ErrConfiguration,
			"GEMINI_API_KEY not found in .env file. Please add it to the backend .env file")
	}
	if len(history) == 0 {
		return "", app_errors.New(app_errors.ErrInvalidRequest, "Invalid request: messages array is required")
	}

	opts := append([]option.ClientOption{option.WithAPIKey(p.cfg.APIKey)}, p.cfg.ClientOptions...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", app_errors.Wrap(app_errors.ErrUpstream, fmt.Sprintf("could not create Gemini client: %v", err), err)
	}
	defer client.Close()

	gm := client.GenerativeModel(p.cfg.Model)
	if p.cfg.SystemPrompt != "" {
		gm.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(p.cfg.SystemPrompt)}}
	}

	prior, last := toGeminiHistory(history)
	cs := gm.StartChat()
	cs.History = prior

	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", app_errors.Wrap(app_errors.ErrUpstream, fmt.Sprintf("Gemini API error: %v", err), err)
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", app_errors.New(app_errors.ErrUpstream, "Gemini returned an empty response")
	}
	return text, nil
}

// toGeminiHistory splits the turns into the chat context and the new message.
// Gemini only knows "user" and "model", so every non-user role maps to "model".
func toGeminiHistory(history []model.ChatTurn) ([]*genai.Content, string) {
	last := history[len(history)-1]
	prior := make([]*genai.Content, 0, len(history)-1)
	for _, turn := range history[:len(history)-1] {
		role := "model"
		if turn.Role == model.RoleUser {
			role = "user"
		}
		prior = append(prior, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}
	return prior, last.Content
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	return text.String()
}
