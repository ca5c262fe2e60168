package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "talky/backend/internal/errors"
	"talky/backend/internal/model"
)

func TestGeminiProvider_MissingCredential(t *testing.T) {
	provider := NewGeminiProvider(GeminiConfig{})

	_, err := provider.Complete(context.Background(), []model.ChatTurn{{Role: "user", Content: "hello"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrConfiguration)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY not found")
}

func TestToGeminiHistory(t *testing.T) {
	t.Run("Single turn has no context", func(t *testing.T) {
		prior, last := toGeminiHistory([]model.ChatTurn{{Role: "user", Content: "hello"}})
		assert.Empty(t, prior)
		assert.Equal(t, "hello", last)
	})

	t.Run("Roles are mapped to the Gemini vocabulary", func(t *testing.T) {
		prior, last := toGeminiHistory([]model.ChatTurn{
			{Role: "user", Content: "one"},
			{Role: "assistant", Content: "two"},
			{Role: "system", Content: "three"},
			{Role: "user", Content: "four"},
		})

		require.Len(t, prior, 3)
		assert.Equal(t, "user", prior[0].Role)
		assert.Equal(t, "model", prior[1].Role)
		assert.Equal(t, "model", prior[2].Role)
		assert.Equal(t, []genai.Part{genai.Text("two")}, prior[1].Parts)
		assert.Equal(t, "four", last)
	})
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("hi "), genai.Text("there")}}},
			{Content: nil},
		},
	}
	assert.Equal(t, "hi there", extractText(resp))
	assert.Equal(t, "", extractText(nil))
}
