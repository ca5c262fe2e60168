package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"talky/backend/internal/model"
)

type redisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) ProfileRepository {
	return &redisRepository{rdb: rdb}
}

func (r *redisRepository) profileKey(userID string) string { return fmt.Sprintf("profile:%s", userID) }

// CreateProfile uses SETNX so two concurrent sign-ups for the same user
// cannot both succeed.
func (r *redisRepository) CreateProfile(ctx context.Context, profile *model.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("could not marshal profile: %w", err)
	}
	ok, err := r.rdb.SetNX(ctx, r.profileKey(profile.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("could not store profile: %w", err)
	}
	if !ok {
		return ErrDuplicate
	}
	return nil
}

func (r *redisRepository) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	data, err := r.rdb.Get(ctx, r.profileKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not load profile: %w", err)
	}
	var p model.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("could not decode profile: %w", err)
	}
	return &p, nil
}
