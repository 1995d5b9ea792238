package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashbox/hashbox/internal/config"
	"github.com/hashbox/hashbox/internal/log"
	"github.com/hashbox/hashbox/internal/store"
)

// Server represents the API server.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new API server bound to the configured address.
// The store may be nil when no index is configured.
func NewServer(cfg *config.Config, st *store.Store, version VersionInfo) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.GetAPIBindAddress(),
			Handler:      NewRouter(cfg, st, version),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start runs the server until Stop is called. A closed listener is a clean
// exit, not an error.
func (s *Server) Start() error {
	log.Infof("[API] Server listening on http://%s", s.httpServer.Addr)
	log.Infof("[API] Example: curl http://%s/api/v1/status", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop gracefully stops the API server.
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("[API] Shutting down server...")
	return s.httpServer.Shutdown(ctx)
}
