package model

import "time"

// Role is the authorization tier of an account.
type Role string

const (
	RoleUser       Role = "user"
	RoleSuperAdmin Role = "superadmin"
)

// ValidRole reports whether r is one of the two known roles.
func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleSuperAdmin
}

// User is a persisted account row. Passwords are only ever stored as a
// salted scrypt hash.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	DisplayName  string    `json:"displayName,omitempty"`
	CreatedAt    time.Time `json:"-"`
}

// SessionUser is the public identity carried inside a session token.
// It never contains credential material.
type SessionUser struct {
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName,omitempty"`
}

// BootstrapAccount is a statically configured credential set usable before
// any database-backed account exists, for initial superadmin provisioning.
type BootstrapAccount struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName,omitempty"`
}

// LoginRequest is the API request body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest is the API request body for POST /api/auth/signup.
type SignupRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
}

// AuthResponse is returned by login and signup alongside the session cookie.
type AuthResponse struct {
	OK   bool        `json:"ok"`
	User SessionUser `json:"user"`
}
