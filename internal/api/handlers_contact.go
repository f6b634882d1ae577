package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bloodcloud/site-api/internal/contact"
	"github.com/bloodcloud/site-api/internal/pkg/httputil"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type newsletterRequest struct {
	Email string `json:"email"`
}

// SubmitContact stores a contact-form submission.
//
//	POST /api/contact
func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := h.contact.Submit(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		if errors.Is(err, contact.ErrValidation) {
			httputil.BadRequest(w, "All fields are required")
			return
		}
		httputil.Internal(w, err)
		return
	}

	httputil.OK(w, map[string]any{
		"success": true,
		"message": "Contact form submitted successfully",
		"id":      id,
	})
}

// SubscribeNewsletter stores a newsletter signup. An address already
// subscribed (exact match on the trimmed string) yields 409.
//
//	POST /api/newsletter
func (h *Handlers) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.contact.Subscribe(req.Email); err != nil {
		switch {
		case errors.Is(err, contact.ErrValidation):
			httputil.BadRequest(w, "Email is required")
		case errors.Is(err, contact.ErrDuplicateSubscription):
			httputil.Conflict(w, "Email already subscribed")
		default:
			httputil.Internal(w, err)
		}
		return
	}

	httputil.OK(w, map[string]any{
		"success": true,
		"message": "Successfully subscribed to newsletter",
	})
}

// GetMessages lists all contact messages, most recent first, bodies omitted.
//
//	GET /api/admin/messages
func (h *Handlers) GetMessages(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]any{
		"messages": h.contact.Messages(),
	})
}

// GetMessage returns one full contact message and marks it read. Fetching a
// message for display is what marks it as seen.
//
//	GET /api/admin/messages/{id}
func (h *Handlers) GetMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	msg, err := h.contact.View(id)
	if err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			httputil.NotFound(w, "Message not found")
			return
		}
		httputil.Internal(w, err)
		return
	}

	httputil.OK(w, map[string]any{
		"message": msg,
	})
}

// GetSubscriptions lists all newsletter subscriptions, most recent first.
//
//	GET /api/admin/newsletter
func (h *Handlers) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]any{
		"subscriptions": h.contact.Subscriptions(),
	})
}
