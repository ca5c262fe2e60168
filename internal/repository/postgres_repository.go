package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"talky/backend/internal/model"
)

// uniqueViolation is the SQLSTATE postgres reports for a duplicate key.
const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository stores profiles in the identity provider's `profiles`
// table. The table is owned by that provider, so no migrations run here.
func NewPostgresRepository(pool *pgxpool.Pool) ProfileRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CreateProfile(ctx context.Context, profile *model.UserProfile) error {
	query := `INSERT INTO profiles (id, full_name, email, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, profile.ID, profile.FullName, profile.Email, profile.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("could not insert profile: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	query := `SELECT id, full_name, email, created_at FROM profiles WHERE id = $1`

	var p model.UserProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(&p.ID, &p.FullName, &p.Email, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not query profile: %w", err)
	}
	return &p, nil
}
