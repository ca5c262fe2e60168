package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "talky/backend/internal/errors"
	"talky/backend/internal/model"
)

// TestOpenAIProvider is a unit test for our OpenAI HTTP client implementation.
//
// GOAL: To verify that `openAIProvider` sends the whole turn history with the
// configured generation parameters and the bearer credential, and that it
// translates the provider's replies and failures into our error taxonomy.
//
// TECHNIQUE: A `httptest` server stands in for the chat-completions API.
func TestOpenAIProvider(t *testing.T) {
	history := []model.ChatTurn{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi"},
		{Role: "user", Content: "how are you?"},
	}

	t.Run("Success", func(t *testing.T) {
		var captured chatCompletionRequest
		var capturedAuth, capturedPath string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedAuth = r.Header.Get("Authorization")
			capturedPath = r.URL.Path
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"fine, thanks"}}]}`))
			assert.NoError(t, err)
		}))
		defer server.Close()

		provider := NewOpenAIProvider(OpenAIConfig{
			APIKey: "sk-test", BaseURL: server.URL + "/", Model: "gpt-test", Temperature: 0.7, MaxTokens: 1000,
		})

		text, err := provider.Complete(context.Background(), history)

		require.NoError(t, err)
		assert.Equal(t, "fine, thanks", text)
		assert.Equal(t, "/chat/completions", capturedPath)
		assert.Equal(t, "Bearer sk-test", capturedAuth)
		assert.Equal(t, "gpt-test", captured.Model)
		assert.Equal(t, history, captured.Messages)
		assert.InDelta(t, 0.7, captured.Temperature, 1e-9)
		assert.Equal(t, 1000, captured.MaxTokens)
	})

	t.Run("Failure - Missing credential", func(t *testing.T) {
		provider := NewOpenAIProvider(OpenAIConfig{})

		_, err := provider.Complete(context.Background(), history)

		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrConfiguration)
	})

	t.Run("Failure - Provider error message is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached for requests"}}`))
		}))
		defer server.Close()

		provider := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL})

		_, err := provider.Complete(context.Background(), history)

		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrUpstream)
		assert.Equal(t, "Rate limit reached for requests", err.Error())
	})

	t.Run("Failure - Non-JSON error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`<html>bad gateway</html>`))
		}))
		defer server.Close()

		provider := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL})

		_, err := provider.Complete(context.Background(), history)

		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrUpstream)
		assert.Equal(t, "OpenAI API error", err.Error())
	})

	t.Run("Failure - No choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		provider := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL})

		_, err := provider.Complete(context.Background(), history)

		assert.ErrorIs(t, err, app_errors.ErrUpstream)
	})
}
