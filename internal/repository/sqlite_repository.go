package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"talky/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) ProfileRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateProfile(ctx context.Context, profile *model.UserProfile) error {
	query := "INSERT INTO profiles (id, full_name, email, created_at) VALUES (?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, profile.ID, profile.FullName, profile.Email, profile.CreatedAt)
	if err != nil {
		if isSQLiteDuplicate(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("could not insert profile: %w", err)
	}
	return nil
}

func (r *sqliteRepository) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	query := "SELECT id, full_name, email, created_at FROM profiles WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, userID)

	var p model.UserProfile
	if err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not query profile: %w", err)
	}
	return &p, nil
}

func isSQLiteDuplicate(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
