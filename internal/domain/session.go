package domain

import "time"

// Role is the authorization class of a session. It is a closed set: adding a
// role means updating every switch that matches on it.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// Session is the identity recorded against an issued token. A token, once
// issued, maps to exactly one role/username pair until revoked.
type Session struct {
	Role      Role      `json:"role"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
