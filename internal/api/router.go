package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hashbox/hashbox/internal/config"
	"github.com/hashbox/hashbox/internal/store"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(cfg *config.Config, st *store.Store, version VersionInfo) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(Logger)
	if cfg.IsPrivateSubnetsOnly() {
		r.Use(PrivateSubnetOnly)
	}
	r.Use(CORS)
	r.Use(JSONContentType)

	// Create handler
	h := NewHandler(cfg, st, version)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Digest endpoints
		r.Get("/algorithms", h.GetAlgorithms)
		r.Post("/digest", h.ComputeDigest)

		// Status endpoint
		r.Get("/status", h.GetStatus)
	})

	// Health check endpoint at root
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
