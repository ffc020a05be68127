package storage

import (
	"context"
	"time"
)

// SessionStorage persists the login session between CLI invocations.
// It stores raw token material as-is; callers decide what goes in.
type SessionStorage interface {
	// SaveSession stores the current session, replacing any previous one
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound when nobody is logged in.
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error

	// IsLoggedIn reports whether a non-expired session exists
	IsLoggedIn(ctx context.Context) (bool, error)
}

// SessionData is the persisted login state for one user
type SessionData struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"` // unix seconds
}

// Expired reports whether the access token is past its lifetime
func (s *SessionData) Expired() bool {
	return s.ExpiresAt > 0 && time.Now().Unix() >= s.ExpiresAt
}
