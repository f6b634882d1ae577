package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bloodcloud/site-api/internal/config"
)

// SetupRoutes configures all API routes and the static front-end fallback.
func SetupRoutes(h *Handlers, health *HealthChecker, cfg config.AuthConfig, site config.SiteConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	// CORS - explicit origins; the panel pages send the session token
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   site.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check (no auth required)
	r.Get("/health", health.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.Ping)

		// Public form endpoints
		r.Post("/contact", h.SubmitContact)
		r.Post("/newsletter", h.SubscribeNewsletter)

		// Session endpoints. Login paths are per-role; verify and logout are
		// shared across roles, with role-scoped verify variants for the
		// route guards that must reject the other tier's token.
		r.Post("/admin/login", h.AdminLogin)
		r.Post("/staff/login", h.StaffLogin)
		r.Post("/logout", h.Logout)
		r.Post("/verify", h.Verify)
		r.Post("/admin/verify", h.VerifyAdmin)
		r.Post("/staff/verify", h.VerifyStaff)
		r.Post("/admin/logout", h.Logout) // older panel builds

		// Admin read endpoints
		r.Group(func(r chi.Router) {
			if cfg.ProtectReads {
				r.Use(h.RequireSession)
			}
			r.Get("/admin/messages", h.GetMessages)
			r.Get("/admin/messages/{id}", h.GetMessage)
			r.Get("/admin/newsletter", h.GetSubscriptions)
		})
	})

	// Serve static files for the marketing front end (SPA with fallback to
	// index.html so client-side routes like /bc-admin resolve)
	spaHandler(r, site.StaticDir)

	return r
}

// spaHandler serves static files and falls back to index.html for SPA routing
func spaHandler(r chi.Router, staticPath string) {
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		// Skip API routes
		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/health") {
			http.NotFound(w, req)
			return
		}

		// Try to serve the file directly
		filePath := filepath.Join(staticPath, path)
		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			http.ServeFile(w, req, filePath)
			return
		}

		// For SPA routing, serve index.html for unknown paths
		http.ServeFile(w, req, filepath.Join(staticPath, "index.html"))
	})
}
