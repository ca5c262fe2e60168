package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_Middleware(t *testing.T) {
	t.Run("Preflight from the frontend origin", func(t *testing.T) {
		tr := setupRouter(t)

		rr := tr.do(http.MethodOptions, "/api/chat", "", "Origin", testFrontendURL, "Access-Control-Request-Method", "POST")

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, testFrontendURL, rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "POST")
	})

	t.Run("Other origins are not allowed", func(t *testing.T) {
		tr := setupRouter(t)

		rr := tr.do(http.MethodGet, "/health", "", "Origin", "http://evil.example")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Security headers on every response", func(t *testing.T) {
		tr := setupRouter(t)

		rr := tr.do(http.MethodGet, "/health", "")

		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
		assert.Equal(t, "1; mode=block", rr.Header().Get("X-XSS-Protection"))
	})

	t.Run("Unknown route", func(t *testing.T) {
		tr := setupRouter(t)

		for _, path := range []string{"/nope", "/api/nope"} {
			rr := tr.do(http.MethodGet, path, "")
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"error":"Route not found"}`, rr.Body.String())
		}
	})
}
