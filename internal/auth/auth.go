// Package auth validates static credentials for the two login tiers and
// manages bearer-token sessions.
package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bloodcloud/site-api/internal/config"
	"github.com/bloodcloud/site-api/internal/domain"
	"github.com/bloodcloud/site-api/internal/store"
)

var (
	// ErrInvalidCredentials covers both unknown-username and wrong-password.
	// The two cases deliberately collapse into one error so callers cannot
	// enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSession is returned when a token is absent from the session
	// store, whether it was never issued, already revoked, or role-mismatched.
	ErrInvalidSession = errors.New("invalid or expired session")
)

// Service authenticates against the static credential tables and issues,
// revokes, and verifies session tokens. Sessions have no expiry; they live
// until logout or process restart.
type Service struct {
	admin    config.Credential
	staff    []config.Credential
	sessions *store.SessionStore
}

// NewService creates an auth service over the given session store.
func NewService(cfg config.AuthConfig, sessions *store.SessionStore) *Service {
	return &Service{
		admin:    cfg.Admin,
		staff:    cfg.Staff,
		sessions: sessions,
	}
}

// Login validates a username/password pair against the credential table for
// the given role and returns a fresh session token. The role is implied by
// which login endpoint was called, never supplied by the client.
func (s *Service) Login(role domain.Role, username, password string) (string, error) {
	var ok bool
	switch role {
	case domain.RoleAdmin:
		ok = username == s.admin.Username && password == s.admin.Password
	case domain.RoleStaff:
		for _, c := range s.staff {
			if username == c.Username && password == c.Password {
				ok = true
				break
			}
		}
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	token := s.newToken()
	s.sessions.Put(token, domain.Session{
		Role:      role,
		Username:  username,
		CreatedAt: time.Now(),
	})
	return token, nil
}

// Logout revokes a token. Revoking an unknown or already-revoked token is a
// no-op; logout always succeeds.
func (s *Service) Logout(token string) {
	s.sessions.Delete(token)
}

// Verify returns the identity recorded against a token, or ErrInvalidSession
// when the token is not active.
func (s *Service) Verify(token string) (domain.Session, error) {
	sess, ok := s.sessions.Get(token)
	if !ok {
		return domain.Session{}, ErrInvalidSession
	}
	return sess, nil
}

// VerifyRole verifies a token and additionally requires the session to hold
// the given role. An admin token is not accepted where staff is required,
// and vice versa; the mismatch reports the same ErrInvalidSession as an
// unknown token.
func (s *Service) VerifyRole(token string, role domain.Role) (domain.Session, error) {
	sess, err := s.Verify(token)
	if err != nil {
		return domain.Session{}, err
	}
	if sess.Role != role {
		return domain.Session{}, ErrInvalidSession
	}
	return sess, nil
}

// newToken generates a session token from a random component and a time
// component, retrying until it is unique among currently active tokens.
func (s *Service) newToken() string {
	for {
		token := strings.ReplaceAll(uuid.New().String(), "-", "") +
			strconv.FormatInt(time.Now().UnixNano(), 36)
		if _, exists := s.sessions.Get(token); !exists {
			return token
		}
	}
}
