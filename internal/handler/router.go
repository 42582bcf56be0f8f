package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vaultpass/passgen/internal/middleware"
)

// Routes groups what NewRouter mounts. Profile and Settings are nil when the
// database is unavailable; their routes are then left out.
type Routes struct {
	Generator *GeneratorHandler
	Profile   *ProfileHandler
	Settings  *SettingsHandler
	Limiter   *middleware.RateLimiter
	JWTSecret string
}

// NewRouter builds the HTTP API.
func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/v1/classes", rt.Generator.HandleClasses)

	r.Group(func(r chi.Router) {
		if rt.Limiter != nil {
			r.Use(rt.Limiter.Middleware)
		}
		r.Post("/api/v1/generate", rt.Generator.HandleGenerate)

		if rt.Profile != nil {
			r.Post("/api/v1/profiles", rt.Profile.HandleRegister)
			r.Post("/api/v1/profiles/login", rt.Profile.HandleLogin)
		}
	})

	if rt.Profile != nil && rt.Settings != nil {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireProfile(rt.JWTSecret))
			r.Get("/api/v1/profile", rt.Profile.HandleMe)
			r.Get("/api/v1/settings", rt.Settings.HandleGet)
			r.Put("/api/v1/settings", rt.Settings.HandlePut)
			r.Post("/api/v1/settings/generate", rt.Settings.HandleGenerate)
		})
	}

	return r
}
