// Package auth holds the UI login domain: principals, roles, and password
// hashing.
package auth

import (
	"errors"
	"strings"
)

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"

	MethodPassword = "password"
)

// ErrInvalidCredentials is returned for any authentication failure the
// caller is allowed to show to the user.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Principal struct {
	UserID int64
	Email  string
	Role   string // "admin" or "viewer"
	Method string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
