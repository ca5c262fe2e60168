package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "talky/backend/internal/errors"
	"talky/backend/internal/model"
)

type stubProvider string

func (s stubProvider) Complete(context.Context, []model.ChatTurn) (string, error) {
	return string(s), nil
}

func newTestRegistry() *Registry {
	r := NewRegistry(ProviderGemini)
	r.Register(ProviderGemini, stubProvider("from gemini"))
	r.Register(ProviderOpenAI, stubProvider("from openai"))
	r.SetFallback(ProviderOpenAI)
	return r
}

func TestRegistry_Resolve(t *testing.T) {
	testCases := []struct {
		name       string
		selector   string
		expectedID string
	}{
		{name: "Empty selector uses default", selector: "", expectedID: ProviderGemini},
		{name: "Explicit gemini", selector: "gemini", expectedID: ProviderGemini},
		{name: "Explicit openai", selector: "openai", expectedID: ProviderOpenAI},
		{name: "Unknown selector uses fallback", selector: "llama", expectedID: ProviderOpenAI},
		{name: "Selector is case sensitive", selector: "Gemini", expectedID: ProviderOpenAI},
	}

	registry := newTestRegistry()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, provider, err := registry.Resolve(tc.selector)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)

			text, err := provider.Complete(context.Background(), nil)
			require.NoError(t, err)
			assert.Equal(t, "from "+tc.expectedID, text)
		})
	}
}

func TestRegistry_ResolveWithoutFallback(t *testing.T) {
	registry := NewRegistry(ProviderGemini)
	registry.Register(ProviderGemini, stubProvider("x"))

	_, _, err := registry.Resolve("openai")
	assert.True(t, errors.Is(err, app_errors.ErrConfiguration))
}

func TestRegistry_IDs(t *testing.T) {
	registry := newTestRegistry()
	registry.Register("mistral", stubProvider("m"))

	assert.Equal(t, []string{"gemini", "mistral", "openai"}, registry.IDs())
	assert.Equal(t, ProviderGemini, registry.Default())
}
