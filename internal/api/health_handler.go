package api

import (
	"net/http"
	"time"

	"github.com/bloodcloud/site-api/internal/pkg/httputil"
	"github.com/bloodcloud/site-api/internal/store"
)

const healthVersion = "1.0.0"

// HealthStatus represents the overall health of the service.
type HealthStatus struct {
	Status  string       `json:"status"`
	Version string       `json:"version"`
	Uptime  string       `json:"uptime"`
	Stores  StoreMetrics `json:"stores"`
}

// StoreMetrics reports the size of each in-memory store. With no external
// dependencies to probe, store sizes are the only operational signal the
// process has.
type StoreMetrics struct {
	ActiveSessions  int `json:"active_sessions"`
	ContactMessages int `json:"contact_messages"`
	Subscriptions   int `json:"newsletter_subscriptions"`
}

// HealthChecker serves the health endpoint.
type HealthChecker struct {
	sessions  *store.SessionStore
	messages  *store.MessageStore
	startTime time.Time
}

// NewHealthChecker creates a HealthChecker over the process stores.
func NewHealthChecker(sessions *store.SessionStore, messages *store.MessageStore) *HealthChecker {
	return &HealthChecker{
		sessions:  sessions,
		messages:  messages,
		startTime: time.Now(),
	}
}

// HandleHealth reports process health. There are no external dependencies,
// so a responding process is a healthy one.
//
//	GET /health
func (hc *HealthChecker) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, HealthStatus{
		Status:  "healthy",
		Version: healthVersion,
		Uptime:  time.Since(hc.startTime).Round(time.Second).String(),
		Stores: StoreMetrics{
			ActiveSessions:  hc.sessions.Len(),
			ContactMessages: hc.messages.MessageCount(),
			Subscriptions:   hc.messages.SubscriptionCount(),
		},
	})
}
