package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "talky/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups everything the router mounts. Profiles and Auth are
// optional; the profile routes exist only when both are set.
type Handlers struct {
	Chat     *ChatHandler
	Models   *ModelHandler
	Health   *HealthHandler
	Profiles *ProfileHandler
	Auth     *JWTAuth
}

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(h Handlers, frontendURL string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)
	r.Use(CORS(frontendURL))

	// --- Public Routes ---
	r.Get("/health", h.Health.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
		r.Get("/health", h.Health.HandleHealth)

		// Relay calls are bounded only by the client connection; no
		// server-side timeout applies to them.
		r.Post("/chat", h.Chat.HandleChat)
		r.Post("/generate", h.Chat.HandleGenerate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(15 * time.Second))

			r.Get("/models", h.Models.HandleListModels)

			if h.Profiles != nil && h.Auth != nil {
				r.Group(func(r chi.Router) {
					r.Use(h.Auth.Middleware)
					r.Post("/profiles", h.Profiles.HandleCreateProfile)
					r.Get("/profiles/me", h.Profiles.HandleGetProfile)
				})
			}
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: "Route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	})

	return r
}
