package interfaces

import (
	"context"

	"talky/backend/internal/model"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// RelayService defines the contract for forwarding conversations upstream.
type RelayService interface {
	Relay(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
	Generate(ctx context.Context, prompt string) (*model.GenerateResponse, error)
}

// ModelService defines the contract for listing upstream providers.
type ModelService interface {
	List(ctx context.Context) (*model.ProvidersResponse, error)
}

// ProfileService defines the contract for the per-user profile row.
type ProfileService interface {
	Create(ctx context.Context, userID string, req *model.CreateProfileRequest) (*model.UserProfile, error)
	Get(ctx context.Context, userID string) (*model.UserProfile, error)
}
