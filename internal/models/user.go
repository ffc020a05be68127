package models

import (
	"strings"
	"time"
)

// User is a directory entry for a registered user
type User struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`    // UUID
	Email     string    `json:"email"` // unique login email
	Name      string    `json:"name"`  // display name
	// PasswordHash is the encoded argon2id hash. Server-side only,
	// never serialized into API responses.
	PasswordHash string `json:"-"`
}

// DisplayName returns the name to show next to shared notes,
// falling back to the email local part when no name was set
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if at := strings.IndexByte(u.Email, '@'); at > 0 {
		return u.Email[:at]
	}
	return u.Email
}

// RefreshToken is a stored refresh token
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"token_hash"` // sha256 of the opaque token
}
