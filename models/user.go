package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-generated unique identifier of the user.
	// Assigned by the repository on first save.
	ID string `json:"-"`

	// Email is the unique user login identifier.
	// Uniqueness is checked at registration time by the auth service, not
	// enforced by the database.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext.
	PasswordHash string `json:"-"`

	// RefreshToken is the user's current opaque refresh token.
	// A single token per user: each login overwrites the previous value,
	// implicitly invalidating it. Empty until the first login.
	RefreshToken string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
