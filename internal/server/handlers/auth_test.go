package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBongSu/AdvanceKeep/internal/server/storage/sqlite"
	"github.com/BBongSu/AdvanceKeep/pkg/api"
)

var testJWTConfig = JWTConfig{
	Secret:          []byte("test-secret"),
	AccessTokenTTL:  time.Minute,
	RefreshTokenTTL: time.Hour,
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func newAuthFixture(t *testing.T) (*AuthHandler, *sqlite.Storage) {
	t.Helper()
	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewAuthHandler(testLogger(), store, store, testJWTConfig), store
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func registerAlice(t *testing.T, h *AuthHandler) string {
	t.Helper()
	w := postJSON(t, h.Register, "/api/v1/auth/register", api.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.UserID
}

func loginAlice(t *testing.T, h *AuthHandler) api.TokenResponse {
	t.Helper()
	w := postJSON(t, h.Login, "/api/v1/auth/login", api.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRegister_CreatesAccountWithHashedPassword(t *testing.T) {
	h, store := newAuthFixture(t)

	userID := registerAlice(t, h)
	assert.NotEmpty(t, userID)

	user, err := store.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.Contains(t, user.PasswordHash, "$argon2id$")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h, _ := newAuthFixture(t)
	registerAlice(t, h)

	w := postJSON(t, h.Register, "/api/v1/auth/register", api.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Other Alice",
		Password: "password456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	h, _ := newAuthFixture(t)

	tests := []struct {
		name string
		req  api.RegisterRequest
	}{
		{"invalid email", api.RegisterRequest{Email: "not-an-email", Name: "A", Password: "password123"}},
		{"short password", api.RegisterRequest{Email: "a@example.com", Name: "A", Password: "short"}},
		{"empty name", api.RegisterRequest{Email: "a@example.com", Name: "", Password: "password123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, h.Register, "/api/v1/auth/register", tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLogin_IssuesTokensAndProfile(t *testing.T) {
	h, store := newAuthFixture(t)
	userID := registerAlice(t, h)

	resp := loginAlice(t, h)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(60), resp.ExpiresIn)
	assert.Equal(t, userID, resp.User.ID)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	// The access token carries the identity.
	claims, err := ValidateAccessToken(testJWTConfig, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	// Only the hash of the refresh token is stored.
	stored, err := store.GetRefreshToken(context.Background(), HashToken(resp.RefreshToken))
	require.NoError(t, err)
	assert.Equal(t, userID, stored.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	h, _ := newAuthFixture(t)
	registerAlice(t, h)

	w := postJSON(t, h.Login, "/api/v1/auth/login", api.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	h, _ := newAuthFixture(t)

	w := postJSON(t, h.Login, "/api/v1/auth/login", api.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefresh_RotatesSingleUseToken(t *testing.T) {
	h, _ := newAuthFixture(t)
	registerAlice(t, h)
	first := loginAlice(t, h)

	w := postJSON(t, h.Refresh, "/api/v1/auth/refresh", api.RefreshRequest{
		RefreshToken: first.RefreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var second api.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.NotEmpty(t, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The consumed token cannot be replayed.
	w = postJSON(t, h.Refresh, "/api/v1/auth/refresh", api.RefreshRequest{
		RefreshToken: first.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The rotated one works.
	w = postJSON(t, h.Refresh, "/api/v1/auth/refresh", api.RefreshRequest{
		RefreshToken: second.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefresh_UnknownToken(t *testing.T) {
	h, _ := newAuthFixture(t)

	w := postJSON(t, h.Refresh, "/api/v1/auth/refresh", api.RefreshRequest{
		RefreshToken: "never-issued",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_RevokesAllSessions(t *testing.T) {
	h, _ := newAuthFixture(t)
	registerAlice(t, h)
	session := loginAlice(t, h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	w := httptest.NewRecorder()
	h.Logout(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The refresh token died with the session.
	resp := postJSON(t, h.Refresh, "/api/v1/auth/refresh", api.RefreshRequest{
		RefreshToken: session.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogout_RequiresValidAccessToken(t *testing.T) {
	h, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	h.Logout(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	h.Logout(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
