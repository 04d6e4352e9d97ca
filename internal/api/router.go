package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/starford/minigrep/internal/storage"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(store storage.Provider, authEnabled bool, token string, logger *slog.Logger) chi.Router {
	h := NewHandler(store, logger)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Get("/search", h.Search)

	return r
}
