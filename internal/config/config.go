package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort     int    `mapstructure:"PORT"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
	SystemPrompt string `mapstructure:"SYSTEM_PROMPT"`

	OpenAIAPIKey      string  `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel       string  `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL     string  `mapstructure:"OPENAI_BASE_URL"`
	OpenAITemperature float64 `mapstructure:"OPENAI_TEMPERATURE"`
	OpenAIMaxTokens   int     `mapstructure:"OPENAI_MAX_TOKENS"`

	ProfileStore  string `mapstructure:"PROFILE_STORE"`
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	AuthJWTSecret string `mapstructure:"AUTH_JWT_SECRET"`
}

// HasProviderCredentials reports whether at least one upstream credential is set.
func (c *Config) HasProviderCredentials() bool {
	return c.GeminiAPIKey != "" || c.OpenAIAPIKey != ""
}

// Secrets returns every configured secret value, for redaction.
func (c *Config) Secrets() []string {
	var secrets []string
	for _, s := range []string{c.GeminiAPIKey, c.OpenAIAPIKey, c.AuthJWTSecret} {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "INFO")

	// Credentials default to empty so that AutomaticEnv can still override them
	// during Unmarshal.
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("SYSTEM_PROMPT", "")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.7)
	viper.SetDefault("OPENAI_MAX_TOKENS", 1000)

	viper.SetDefault("PROFILE_STORE", "sqlite")
	viper.SetDefault("DATABASE_PATH", "./data/talky.db")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("AUTH_JWT_SECRET", "")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
