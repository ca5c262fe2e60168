package repository

import "errors"

// These errors let the repository report outcomes without exposing the
// underlying driver. The service layer translates them into app errors.

// ErrNotFound is returned when a lookup for a single profile finds nothing.
// It hides `sql.ErrNoRows`, `pgx.ErrNoRows` and `redis.Nil`.
var ErrNotFound = errors.New("repository: not found")

// ErrDuplicate is returned when a profile with the same id already exists.
var ErrDuplicate = errors.New("repository: duplicate key")
