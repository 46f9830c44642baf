package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	// Always stored and compared in lowercase form.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Empty for accounts created through a non-password path.
	// It is never serialized and must never leave the repository layer
	// except through the explicit credential-check accessor.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed by a database trigger whenever any user
	// column is written.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user with the password hash stripped.
// Every repository method except the credential-check accessor applies
// this projection before returning, so no call site can forget it.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// Principal is the authenticated identity attached to a request after
// successful credential or token verification. Both verification paths
// (local email+password and bearer token) produce the same shape so
// downstream handlers are strategy-agnostic.
type Principal struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Principal returns the reduced, hash-free view of the user.
func (u User) Principal() Principal {
	return Principal{
		UserID: u.UserID,
		Email:  u.Email,
		Name:   u.Name,
	}
}

// Credentials carries the raw material a verification strategy consumes:
// either an email/password pair (local strategy) or a bearer token string
// (token strategy). Exactly one set of fields is populated per request.
type Credentials struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Token    string `json:"-"`
}
