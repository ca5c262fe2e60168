package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	app_errors "talky/backend/internal/errors"
	"talky/backend/internal/model"
	"talky/backend/internal/repository"
)

// ProfileService creates and reads the single profile row per user.
type ProfileService struct {
	repo repository.ProfileRepository
	now  func() time.Time
}

func NewProfileService(repo repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo, now: time.Now}
}

// WithClock replaces the time source used for created_at.
func (s *ProfileService) WithClock(now func() time.Time) *ProfileService {
	s.now = now
	return s
}

// Create stores the profile for userID. A second call for the same user
// returns ErrConflict.
func (s *ProfileService) Create(ctx context.Context, userID string, req *model.CreateProfileRequest) (*model.UserProfile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, app_errors.New(app_errors.ErrValidation, "user id must be a UUID")
	}
	if req == nil || strings.TrimSpace(req.Email) == "" {
		return nil, app_errors.New(app_errors.ErrValidation, "email is required")
	}

	profile := &model.UserProfile{
		ID:        userID,
		FullName:  strings.TrimSpace(req.FullName),
		Email:     strings.TrimSpace(req.Email),
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, app_errors.New(app_errors.ErrConflict, "profile already exists")
		}
		return nil, app_errors.Wrap(app_errors.ErrInternal, "could not create profile", err)
	}

	slog.Info("Profile created", "user_id", userID)
	profile.DisplayName = displayName(profile)
	return profile, nil
}

// Get returns the stored profile with its display name filled in.
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app_errors.New(app_errors.ErrNotFound, "profile not found")
		}
		return nil, app_errors.Wrap(app_errors.ErrInternal, fmt.Sprintf("could not load profile %s", userID), err)
	}
	profile.DisplayName = displayName(profile)
	return profile, nil
}

// displayName is the full name, or the local part of the email when no name
// was given.
func displayName(p *model.UserProfile) string {
	if name := strings.TrimSpace(p.FullName); name != "" {
		return name
	}
	local, _, _ := strings.Cut(p.Email, "@")
	return local
}
