package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bloodcloud/site-api/internal/auth"
	"github.com/bloodcloud/site-api/internal/domain"
	"github.com/bloodcloud/site-api/internal/pkg/httputil"
	"github.com/bloodcloud/site-api/internal/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionRequest struct {
	SessionToken string `json:"sessionToken"`
}

// AdminLogin authenticates against the admin credential pair.
//
//	POST /api/admin/login
func (h *Handlers) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, domain.RoleAdmin)
}

// StaffLogin authenticates against the staff credential table.
//
//	POST /api/staff/login
func (h *Handlers) StaffLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, domain.RoleStaff)
}

// login is the shared login flow. The role comes from the route, never from
// the request body.
func (h *Handlers) login(w http.ResponseWriter, r *http.Request, role domain.Role) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		httputil.BadRequest(w, "Username and password are required")
		return
	}

	token, err := h.auth.Login(role, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			httputil.Unauthorized(w, "Invalid credentials")
			return
		}
		httputil.Internal(w, err)
		return
	}

	logger.Info("login", "username", req.Username, "role", string(role))
	httputil.OK(w, map[string]any{
		"success":      true,
		"sessionToken": token,
		"userType":     string(role),
		"message":      "Login successful",
	})
}

// Logout revokes the presented token. It reports success whether or not the
// token was active, so repeated logouts and stale tokens are harmless.
//
//	POST /api/logout
//	POST /api/admin/logout (older clients)
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.auth.Logout(req.SessionToken)
	httputil.OK(w, map[string]any{
		"success": true,
		"message": "Logout successful",
	})
}

// Verify reports the identity behind a token, whichever role it holds.
//
//	POST /api/verify
func (h *Handlers) Verify(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sess, err := h.auth.Verify(req.SessionToken)
	if err != nil {
		httputil.Unauthorized(w, "Invalid or expired session")
		return
	}
	respondVerified(w, sess)
}

// VerifyAdmin verifies a token and requires the admin role. A staff token is
// rejected exactly like an unknown one.
//
//	POST /api/admin/verify
func (h *Handlers) VerifyAdmin(w http.ResponseWriter, r *http.Request) {
	h.verifyRole(w, r, domain.RoleAdmin)
}

// VerifyStaff verifies a token and requires the staff role. An admin token
// is rejected exactly like an unknown one.
//
//	POST /api/staff/verify
func (h *Handlers) VerifyStaff(w http.ResponseWriter, r *http.Request) {
	h.verifyRole(w, r, domain.RoleStaff)
}

func (h *Handlers) verifyRole(w http.ResponseWriter, r *http.Request, role domain.Role) {
	var req sessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sess, err := h.auth.VerifyRole(req.SessionToken, role)
	if err != nil {
		httputil.Unauthorized(w, "Invalid or expired session")
		return
	}
	respondVerified(w, sess)
}

func respondVerified(w http.ResponseWriter, sess domain.Session) {
	httputil.OK(w, map[string]any{
		"success":  true,
		"valid":    true,
		"username": sess.Username,
		"userType": string(sess.Role),
	})
}

// RequireSession is middleware that requires a valid bearer token of either
// role. It is mounted over the admin read endpoints only when
// auth.protect_reads is enabled; the reference deployment gates those
// client-side instead.
func (h *Handlers) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if _, err := h.auth.Verify(token); err != nil {
			httputil.Unauthorized(w, "Invalid or expired session")
			return
		}
		next.ServeHTTP(w, r)
	})
}
