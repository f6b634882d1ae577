package domain

import "time"

// ContactMessage is a stored contact-form submission. Read starts false and
// flips true the first time the full message is viewed; it never flips back.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// Summary returns the listing projection of the message. The body is omitted
// from listings.
func (m ContactMessage) Summary() MessageSummary {
	return MessageSummary{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Timestamp: m.Timestamp,
		Read:      m.Read,
	}
}

// MessageSummary is a ContactMessage without its body, as returned by the
// listing endpoint.
type MessageSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// NewsletterSubscription is a stored newsletter signup. Subscriptions are
// immutable once created; there is no unsubscribe.
type NewsletterSubscription struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}
