package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bloodcloud/site-api/internal/auth"
	"github.com/bloodcloud/site-api/internal/config"
	"github.com/bloodcloud/site-api/internal/contact"
	"github.com/bloodcloud/site-api/internal/store"
)

// Server represents the API server
type Server struct {
	handler http.Handler
	server  *http.Server
}

// NewServer wires the services into a router and returns the API server.
func NewServer(
	cfg *config.Config,
	authSvc *auth.Service,
	contactSvc *contact.Service,
	sessions *store.SessionStore,
	messages *store.MessageStore,
) *Server {
	handlers := NewHandlers(authSvc, contactSvc, cfg.Site)
	health := NewHealthChecker(sessions, messages)
	router := SetupRoutes(handlers, health, cfg.Auth, cfg.Site)

	return &Server{handler: router}
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.handler,
		// Every operation is a single in-memory step; nothing here needs
		// long deadlines.
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing
func (s *Server) Handler() http.Handler {
	return s.handler
}
