package store

import (
	"sync"

	"github.com/bloodcloud/site-api/internal/domain"
)

// SessionStore maps opaque session tokens to the identity that authenticated.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domain.Session),
	}
}

// Put records a session against a token, replacing any existing entry.
func (s *SessionStore) Put(token string, sess domain.Session) {
	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()
}

// Get returns the session for a token, if one is active.
func (s *SessionStore) Get(token string) (domain.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	return sess, ok
}

// Delete revokes a token. Deleting an unknown token is a no-op.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len returns the number of active sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	n := len(s.sessions)
	s.mu.RUnlock()
	return n
}
