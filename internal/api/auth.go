package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	app_errors "talky/backend/internal/errors"
)

type contextKey string

const userIDKey contextKey = "user_id"

// JWTAuth verifies identity-provider tokens signed with a shared HS256 secret.
type JWTAuth struct {
	secret []byte
}

func NewJWTAuth(secret string) *JWTAuth {
	return &JWTAuth{secret: []byte(secret)}
}

// Middleware validates the bearer token and attaches the subject, which must
// be a UUID, to the request context.
func (j *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, app_errors.New(app_errors.ErrUnauthorized, "Missing authorization header"))
			return
		}

		scheme, tokenStr, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || tokenStr == "" {
			respondWithError(w, app_errors.New(app_errors.ErrUnauthorized, "Invalid authorization format"))
			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
			return j.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			respondWithError(w, app_errors.Wrap(app_errors.ErrUnauthorized, msg, err))
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			respondWithError(w, app_errors.New(app_errors.ErrUnauthorized, "Invalid user ID in token"))
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext returns the authenticated user id, or "" outside the
// auth middleware.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
