package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talky/backend/internal/llm"
	"talky/backend/internal/llm/mocks"
	"talky/backend/internal/service"
)

func TestModelService_List(t *testing.T) {
	registry := llm.NewRegistry(llm.ProviderGemini)
	registry.Register(llm.ProviderOpenAI, mocks.NewMockProvider(t))
	registry.Register(llm.ProviderGemini, mocks.NewMockProvider(t))

	resp, err := service.NewModelService(registry).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "gemini", resp.Default)
	assert.Equal(t, []string{"gemini", "openai"}, resp.Providers)
}
