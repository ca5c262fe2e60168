package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"talky/backend/internal/api"
	"talky/backend/internal/config"
	"talky/backend/internal/database"
	"talky/backend/internal/llm"
	"talky/backend/internal/repository"
	"talky/backend/internal/service"
)

// App is the assembled relay: the HTTP server plus whatever profile store
// it opened.
type App struct {
	Server *http.Server
	Config *config.Config

	closeStore func() error
}

// NewApp wires providers, services and handlers from cfg. The profile store
// is only opened when AUTH_JWT_SECRET is set.
func NewApp(cfg *config.Config) (*App, error) {
	registry := llm.NewRegistry(llm.ProviderGemini)
	registry.Register(llm.ProviderGemini, llm.NewGeminiProvider(llm.GeminiConfig{
		APIKey:       cfg.GeminiAPIKey,
		Model:        cfg.GeminiModel,
		SystemPrompt: cfg.SystemPrompt,
	}))
	registry.Register(llm.ProviderOpenAI, llm.NewOpenAIProvider(llm.OpenAIConfig{
		APIKey:      cfg.OpenAIAPIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.OpenAIModel,
		Temperature: cfg.OpenAITemperature,
		MaxTokens:   cfg.OpenAIMaxTokens,
	}))
	registry.SetFallback(llm.ProviderOpenAI)

	sanitizer := llm.NewSanitizer(cfg.Secrets()...)
	chatService := service.NewChatService(registry, sanitizer)
	modelService := service.NewModelService(registry)

	handlers := api.Handlers{
		Chat:   api.NewChatHandler(chatService),
		Models: api.NewModelHandler(modelService),
		Health: api.NewHealthHandler(time.Now),
	}

	a := &App{Config: cfg, closeStore: func() error { return nil }}

	if cfg.AuthJWTSecret == "" {
		slog.Warn("AUTH_JWT_SECRET is not set; profile routes are disabled.")
	} else {
		repo, closeFn, err := openProfileStore(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		a.closeStore = closeFn
		handlers.Profiles = api.NewProfileHandler(service.NewProfileService(repo))
		handlers.Auth = api.NewJWTAuth(cfg.AuthJWTSecret)
	}

	a.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           api.NewRouter(handlers, cfg.FrontendURL),
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Relay calls have no server-side deadline.
		IdleTimeout:       120 * time.Second,
	}
	return a, nil
}

// Close releases the profile store.
func (a *App) Close() error {
	return a.closeStore()
}

// openProfileStore opens the backend named by PROFILE_STORE.
func openProfileStore(ctx context.Context, cfg *config.Config) (repository.ProfileRepository, func() error, error) {
	switch strings.ToLower(cfg.ProfileStore) {
	case "", "sqlite":
		db, err := database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)
		return repository.NewSQLiteRepository(db), db.Close, nil
	case "postgres":
		pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Successfully connected to Postgres.")
		return repository.NewPostgresRepository(pool), func() error { pool.Close(); return nil }, nil
	case "redis":
		rdb, err := database.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr)
		return repository.NewRedisRepository(rdb), rdb.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown PROFILE_STORE %q (want sqlite, postgres or redis)", cfg.ProfileStore)
	}
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	if !cfg.HasProviderCredentials() {
		slog.Warn("Neither GEMINI_API_KEY nor OPENAI_API_KEY is set. Chat requests will fail until one is added to the backend .env file.")
	}

	a, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("Failed to close profile store", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort, "frontend_url", cfg.FrontendURL)
		serverErr <- a.Server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
