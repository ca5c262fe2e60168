package repository

import (
	"context"

	"talky/backend/internal/model"
)

// ProfileRepository defines the storage operations for user profiles.
// The sqlite, postgres and redis stores all satisfy it, so the service layer
// never knows which backend PROFILE_STORE selected.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *model.UserProfile) error
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
}
