package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBongSu/AdvanceKeep/internal/models"
	"github.com/BBongSu/AdvanceKeep/internal/server/storage"
)

func testToken(hash, userID string, expiresAt time.Time) *models.RefreshToken {
	return &models.RefreshToken{
		ID:        "t-" + hash,
		TokenHash: hash,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().Truncate(time.Second),
	}
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, testAccount("u1", "alice@example.com")))

	token := testToken("h1", "u1", time.Now().Add(time.Hour))
	require.NoError(t, s.SaveRefreshToken(ctx, token))

	got, err := s.GetRefreshToken(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, token.ExpiresAt.Unix(), got.ExpiresAt.Unix())
}

func TestRefreshToken_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetRefreshToken(context.Background(), "h404")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	err = s.DeleteRefreshToken(context.Background(), "h404")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestDeleteUserTokens_RemovesAllSessions(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, testAccount("u1", "alice@example.com")))
	require.NoError(t, s.CreateUser(ctx, testAccount("u2", "bob@example.com")))

	require.NoError(t, s.SaveRefreshToken(ctx, testToken("h1", "u1", time.Now().Add(time.Hour))))
	require.NoError(t, s.SaveRefreshToken(ctx, testToken("h2", "u1", time.Now().Add(time.Hour))))
	require.NoError(t, s.SaveRefreshToken(ctx, testToken("h3", "u2", time.Now().Add(time.Hour))))

	deleted, err := s.DeleteUserTokens(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = s.GetRefreshToken(ctx, "h1")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	// The other user's session survives.
	_, err = s.GetRefreshToken(ctx, "h3")
	assert.NoError(t, err)
}

func TestDeleteExpiredTokens(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, testAccount("u1", "alice@example.com")))

	require.NoError(t, s.SaveRefreshToken(ctx, testToken("stale", "u1", time.Now().Add(-time.Hour))))
	require.NoError(t, s.SaveRefreshToken(ctx, testToken("fresh", "u1", time.Now().Add(time.Hour))))

	deleted, err := s.DeleteExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = s.GetRefreshToken(ctx, "stale")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	_, err = s.GetRefreshToken(ctx, "fresh")
	assert.NoError(t, err)
}
