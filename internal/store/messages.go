package store

import (
	"sort"
	"sync"

	"github.com/bloodcloud/site-api/internal/domain"
)

// MessageStore holds contact messages and newsletter subscriptions in
// insertion order. Messages are never deleted; the only mutation after
// insert is the read-flag transition performed by View.
type MessageStore struct {
	mu            sync.RWMutex
	messages      []domain.ContactMessage
	byID          map[string]int // message id -> index into messages
	subscriptions []domain.NewsletterSubscription
	subEmails     map[string]struct{} // trimmed email, exact case
	subIDs        map[string]struct{}
}

// NewMessageStore creates an empty message store.
func NewMessageStore() *MessageStore {
	return &MessageStore{
		byID:      make(map[string]int),
		subEmails: make(map[string]struct{}),
		subIDs:    make(map[string]struct{}),
	}
}

// IDInUse reports whether an identifier has already been issued to a message
// or a subscription.
func (s *MessageStore) IDInUse(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.byID[id]; ok {
		return true
	}
	_, ok := s.subIDs[id]
	return ok
}

// AddMessage appends a contact message.
func (s *MessageStore) AddMessage(msg domain.ContactMessage) {
	s.mu.Lock()
	s.byID[msg.ID] = len(s.messages)
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
}

// MessageExists reports whether a message with the given id has been stored.
func (s *MessageStore) MessageExists(id string) bool {
	s.mu.RLock()
	_, ok := s.byID[id]
	s.mu.RUnlock()
	return ok
}

// Messages returns all contact messages ordered by timestamp descending.
// Equal timestamps keep their insertion order.
func (s *MessageStore) Messages() []domain.ContactMessage {
	s.mu.RLock()
	out := make([]domain.ContactMessage, len(s.messages))
	copy(out, s.messages)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// View returns the full message with the given id and marks it read. The
// flag only ever transitions false -> true; viewing an already-read message
// leaves it unchanged.
func (s *MessageStore) View(id string) (domain.ContactMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[id]
	if !ok {
		return domain.ContactMessage{}, false
	}
	s.messages[idx].Read = true
	return s.messages[idx], true
}

// MessageCount returns the number of stored contact messages.
func (s *MessageStore) MessageCount() int {
	s.mu.RLock()
	n := len(s.messages)
	s.mu.RUnlock()
	return n
}

// AddSubscription appends a newsletter subscription.
func (s *MessageStore) AddSubscription(sub domain.NewsletterSubscription) {
	s.mu.Lock()
	s.subEmails[sub.Email] = struct{}{}
	s.subIDs[sub.ID] = struct{}{}
	s.subscriptions = append(s.subscriptions, sub)
	s.mu.Unlock()
}

// SubscriptionExists reports whether the exact (case-sensitive) email is
// already subscribed.
func (s *MessageStore) SubscriptionExists(email string) bool {
	s.mu.RLock()
	_, ok := s.subEmails[email]
	s.mu.RUnlock()
	return ok
}

// Subscriptions returns all newsletter subscriptions ordered by timestamp
// descending.
func (s *MessageStore) Subscriptions() []domain.NewsletterSubscription {
	s.mu.RLock()
	out := make([]domain.NewsletterSubscription, len(s.subscriptions))
	copy(out, s.subscriptions)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// SubscriptionCount returns the number of stored subscriptions.
func (s *MessageStore) SubscriptionCount() int {
	s.mu.RLock()
	n := len(s.subscriptions)
	s.mu.RUnlock()
	return n
}
