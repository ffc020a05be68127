package storage

import (
	"context"

	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// TokenStorage defines interface for refresh token persistence.
// Tokens are stored by hash; the opaque value never hits disk.
type TokenStorage interface {
	// SaveRefreshToken stores a new refresh token
	// If a token with the same hash exists, it will be replaced
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// GetRefreshToken retrieves refresh token by its hash
	// Returns ErrTokenNotFound if token doesn't exist
	GetRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error)

	// DeleteRefreshToken deletes refresh token by its hash
	// Returns ErrTokenNotFound if token doesn't exist
	DeleteRefreshToken(ctx context.Context, tokenHash string) error

	// DeleteUserTokens deletes all refresh tokens for a user
	// Returns number of deleted tokens
	DeleteUserTokens(ctx context.Context, userID string) (int, error)

	// DeleteExpiredTokens removes all expired tokens
	// Returns number of deleted tokens
	DeleteExpiredTokens(ctx context.Context) (int, error)
}
