package models

import "time"

// User roles carried in access tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account of the authentication collaborator.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	DisplayName  string    `json:"display_name" db:"display_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Session is the identity of the caller, passed explicitly into every
// service call. The zero value is an anonymous session.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Authenticated reports whether a user is logged in.
func (s Session) Authenticated() bool { return s.UserID != "" }

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
