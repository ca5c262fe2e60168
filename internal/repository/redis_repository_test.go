package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talky/backend/internal/model"
	"talky/backend/internal/repository"
)

// TestRedisRepository runs against a live Redis and is skipped unless
// REDIS_ADDR points at one.
func TestRedisRepository(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping Redis repository test")
	}

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := repository.NewRedisRepository(rdb)
	profile := &model.UserProfile{
		ID:        uuid.NewString(),
		FullName:  "Grace Hopper",
		Email:     "grace@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	t.Cleanup(func() { rdb.Del(ctx, "profile:"+profile.ID) })

	_, err := repo.GetProfile(ctx, profile.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.CreateProfile(ctx, profile))
	assert.ErrorIs(t, repo.CreateProfile(ctx, profile), repository.ErrDuplicate)

	got, err := repo.GetProfile(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.FullName, got.FullName)
	assert.True(t, profile.CreatedAt.Equal(got.CreatedAt))
}
