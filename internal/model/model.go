package model

import "time"

// Conversation roles understood by the relay.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one message in a conversation, tagged with its speaker role.
type ChatTurn struct {
	Role    string `json:"role" validate:"required" example:"user"`
	Content string `json:"content" example:"hello"`
}

// ChatRequest is the body of POST /api/chat. Model is optional; an empty
// value selects the default provider.
type ChatRequest struct {
	Messages []ChatTurn `json:"messages" validate:"required,min=1,dive"`
	Model    string     `json:"model,omitempty" example:"gemini"`
}

// ChatResponse is the success body of POST /api/chat.
type ChatResponse struct {
	Response string `json:"response" example:"hi there"`
	Model    string `json:"model" example:"gemini"`
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required" example:"Write a haiku about Go"`
}

// GenerateResponse is the success body of POST /api/generate.
type GenerateResponse struct {
	Text string `json:"text"`
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Message   string `json:"message" example:"Backend server is running"`
	Timestamp string `json:"timestamp" example:"2026-01-01T00:00:00.000Z"`
}

// ProvidersResponse lists the upstream providers the relay can route to.
type ProvidersResponse struct {
	Default   string   `json:"default" example:"gemini"`
	Providers []string `json:"providers"`
}

// UserProfile is the single row persisted per user. The id is the subject
// assigned by the hosted identity provider.
type UserProfile struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProfileRequest is the body of POST /api/profiles.
type CreateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,max=100" example:"Ada Lovelace"`
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
}
