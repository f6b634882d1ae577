// Package contact accepts contact-form submissions and newsletter signups
// and serves them back to the admin endpoints.
package contact

import (
	"errors"
	"strings"
	"time"

	"github.com/bloodcloud/site-api/internal/domain"
	"github.com/bloodcloud/site-api/internal/pkg/logger"
	"github.com/bloodcloud/site-api/internal/store"
)

var (
	// ErrValidation means a required field is missing or blank after trimming.
	ErrValidation = errors.New("missing required field")

	// ErrDuplicateSubscription means the trimmed email is already subscribed.
	ErrDuplicateSubscription = errors.New("email already subscribed")

	// ErrNotFound means no message exists with the requested id.
	ErrNotFound = errors.New("message not found")
)

// Service provides the contact-form and newsletter operations over the
// message store.
type Service struct {
	store *store.MessageStore
}

// NewService creates a contact service over the given message store.
func NewService(st *store.MessageStore) *Service {
	return &Service{store: st}
}

// Submit stores a contact-form submission and returns its fresh 10-digit
// identifier. All four fields are required and trimmed; ErrValidation is
// returned when any is blank. Email format is not checked server-side — the
// front end validates format and the server only checks presence.
func (s *Service) Submit(name, email, subject, message string) (string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || subject == "" || message == "" {
		return "", ErrValidation
	}

	id, err := s.newID()
	if err != nil {
		return "", err
	}
	s.store.AddMessage(domain.ContactMessage{
		ID:        id,
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		Timestamp: time.Now(),
		Read:      false,
	})

	logger.Info("contact message received", "id", id, "email", email, "subject", subject)
	return id, nil
}

// Subscribe stores a newsletter subscription. The email is trimmed and must
// be non-empty; duplicates are detected by exact, case-sensitive match on the
// trimmed address.
func (s *Service) Subscribe(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrValidation
	}
	if s.store.SubscriptionExists(email) {
		return ErrDuplicateSubscription
	}

	id, err := s.newID()
	if err != nil {
		return err
	}
	s.store.AddSubscription(domain.NewsletterSubscription{
		ID:        id,
		Email:     email,
		Timestamp: time.Now(),
	})

	logger.Info("newsletter subscription added", "id", id, "email", email)
	return nil
}

// Messages returns summaries of all contact messages, most recent first. The
// message body is omitted from summaries.
func (s *Service) Messages() []domain.MessageSummary {
	msgs := s.store.Messages()
	out := make([]domain.MessageSummary, len(msgs))
	for i, m := range msgs {
		out[i] = m.Summary()
	}
	return out
}

// View returns the full message with the given id and marks it read. The
// read flag flips false -> true on the first view and stays true afterwards;
// this mutating read is the contract, not an accident, so the operation is
// named View rather than Get.
func (s *Service) View(id string) (domain.ContactMessage, error) {
	msg, ok := s.store.View(id)
	if !ok {
		return domain.ContactMessage{}, ErrNotFound
	}
	return msg, nil
}

// Subscriptions returns all newsletter subscriptions, most recent first.
func (s *Service) Subscriptions() []domain.NewsletterSubscription {
	return s.store.Subscriptions()
}
