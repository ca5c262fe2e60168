package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()
		// Empty variables are ignored by viper, so this pins the defaults.
		for _, key := range []string{"PORT", "FRONTEND_URL", "GEMINI_API_KEY", "GEMINI_MODEL", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_TEMPERATURE", "OPENAI_MAX_TOKENS", "PROFILE_STORE"} {
			t.Setenv(key, "")
		}

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 5000, cfg.AppPort)
		assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
		assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
		assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
		assert.InDelta(t, 0.7, cfg.OpenAITemperature, 1e-9)
		assert.Equal(t, 1000, cfg.OpenAIMaxTokens)
		assert.Equal(t, "sqlite", cfg.ProfileStore)
		assert.False(t, cfg.HasProviderCredentials())
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		viper.Reset()
		t.Setenv("PORT", "8081")
		t.Setenv("GEMINI_API_KEY", "gemini-secret")
		t.Setenv("FRONTEND_URL", "https://talky.example.com")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8081, cfg.AppPort)
		assert.Equal(t, "gemini-secret", cfg.GeminiAPIKey)
		assert.Equal(t, "https://talky.example.com", cfg.FrontendURL)
		assert.True(t, cfg.HasProviderCredentials())
	})
}

func TestConfig_Secrets(t *testing.T) {
	cfg := &Config{GeminiAPIKey: "g", AuthJWTSecret: "j"}
	assert.Equal(t, []string{"g", "j"}, cfg.Secrets())
	assert.Empty(t, (&Config{}).Secrets())
}
