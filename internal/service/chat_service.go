package service

import (
	"context"
	"log/slog"
	"strings"

	app_errors "talky/backend/internal/errors"
	"talky/backend/internal/llm"
	"talky/backend/internal/model"
)

// MessagesRequiredMessage is the client-facing text for a request without turns.
const MessagesRequiredMessage = "Invalid request: messages array is required"

// ChatService relays conversations to the upstream provider chosen by the
// registry. Every error it returns has already been sanitized.
type ChatService struct {
	registry  *llm.Registry
	sanitizer *llm.Sanitizer
}

func NewChatService(registry *llm.Registry, sanitizer *llm.Sanitizer) *ChatService {
	return &ChatService{registry: registry, sanitizer: sanitizer}
}

// Relay sends the full history to the selected provider and returns its reply
// together with the id of the provider that produced it.
func (s *ChatService) Relay(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, app_errors.New(app_errors.ErrInvalidRequest, MessagesRequiredMessage)
	}

	id, provider, err := s.registry.Resolve(req.Model)
	if err != nil {
		return nil, s.fail(req.Model, err)
	}

	text, err := provider.Complete(ctx, req.Messages)
	if err != nil {
		return nil, s.fail(id, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, s.fail(id, app_errors.New(app_errors.ErrUpstream, "Provider returned an empty response"))
	}

	slog.Debug("Relayed chat request", "provider", id, "turns", len(req.Messages), "reply_chars", len(text))
	return &model.ChatResponse{Response: text, Model: id}, nil
}

// Generate is a single-turn relay to the default provider.
func (s *ChatService) Generate(ctx context.Context, prompt string) (*model.GenerateResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, app_errors.New(app_errors.ErrInvalidRequest, "Invalid request: prompt is required")
	}
	resp, err := s.Relay(ctx, &model.ChatRequest{
		Messages: []model.ChatTurn{{Role: model.RoleUser, Content: prompt}},
	})
	if err != nil {
		return nil, err
	}
	return &model.GenerateResponse{Text: resp.Response}, nil
}

// fail logs the redacted internal error and returns the sanitized one.
func (s *ChatService) fail(providerID string, err error) error {
	safe := s.sanitizer.Sanitize(err)
	slog.Error("Provider call failed",
		"provider", providerID,
		"client_message", safe.Error(),
		"error", s.sanitizer.Redact(err.Error()),
	)
	return safe
}
