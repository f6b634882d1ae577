package api

import (
	"encoding/json"
	"net/http"

	"github.com/bloodcloud/site-api/internal/auth"
	"github.com/bloodcloud/site-api/internal/config"
	"github.com/bloodcloud/site-api/internal/contact"
	"github.com/bloodcloud/site-api/internal/pkg/httputil"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	auth    *auth.Service
	contact *contact.Service
	site    config.SiteConfig
}

// NewHandlers creates a new Handlers instance
func NewHandlers(authSvc *auth.Service, contactSvc *contact.Service, site config.SiteConfig) *Handlers {
	return &Handlers{
		auth:    authSvc,
		contact: contactSvc,
		site:    site,
	}
}

// Ping returns the configured ping message.
//
//	GET /api/ping
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]string{"message": h.site.PingMessage})
}

// decodeJSON decodes a request body into dst. On failure it writes a 400 and
// reports false; the handler must return without writing anything else.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httputil.BadRequest(w, "Invalid request body")
		return false
	}
	return true
}
