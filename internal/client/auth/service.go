// Package auth manages the client login session: register, login,
// logout, and restoring the persisted session between CLI runs.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BBongSu/AdvanceKeep/internal/client/api"
	"github.com/BBongSu/AdvanceKeep/internal/client/storage"
	"github.com/BBongSu/AdvanceKeep/internal/models"
	"github.com/BBongSu/AdvanceKeep/internal/validation"
	pkgapi "github.com/BBongSu/AdvanceKeep/pkg/api"
)

// ErrNotLoggedIn is returned when no usable session exists
var ErrNotLoggedIn = errors.New("not logged in")

// Service handles authentication against the server and keeps the
// session persisted locally so the CLI stays logged in between runs
type Service struct {
	apiClient *api.Client
	sessions  storage.SessionStorage
	logger    *slog.Logger
}

// NewService creates a new auth service
func NewService(apiClient *api.Client, sessions storage.SessionStorage, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
	}
}

// Register creates a new account. The password travels to the server
// over TLS and is hashed there; nothing secret is derived client-side.
func (s *Service) Register(ctx context.Context, email, name, password string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidateName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	_, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	return nil
}

// Login authenticates and persists the session
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := s.storeSession(ctx, resp); err != nil {
		return nil, err
	}

	s.apiClient.SetToken(resp.AccessToken)

	return &models.User{ID: resp.User.ID, Name: resp.User.Name, Email: resp.User.Email}, nil
}

// Logout revokes the refresh token and drops the local session.
// The local session is removed even when the server call fails, so a
// dead server cannot pin a client logged in.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.apiClient.Logout(ctx); err != nil {
		s.logger.Warn("server logout failed, clearing local session anyway", "error", err)
	}

	s.apiClient.SetToken("")

	if err := s.sessions.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return ErrNotLoggedIn
		}
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// Restore loads the persisted session and arms the API client with its
// token, refreshing the pair first when the access token has expired.
// Returns ErrNotLoggedIn when there is no session to restore.
func (s *Service) Restore(ctx context.Context) (*models.User, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.Expired() {
		resp, err := s.apiClient.Refresh(ctx, pkgapi.RefreshRequest{
			RefreshToken: session.RefreshToken,
		})
		if err != nil {
			return nil, fmt.Errorf("session expired and refresh failed: %w", err)
		}
		if err := s.storeSession(ctx, resp); err != nil {
			return nil, err
		}
		session = &storage.SessionData{
			UserID:      resp.User.ID,
			Name:        resp.User.Name,
			Email:       resp.User.Email,
			AccessToken: resp.AccessToken,
		}
	}

	s.apiClient.SetToken(session.AccessToken)

	return &models.User{ID: session.UserID, Name: session.Name, Email: session.Email}, nil
}

// CurrentUser returns the logged-in user without touching the network
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &models.User{ID: session.UserID, Name: session.Name, Email: session.Email}, nil
}

func (s *Service) storeSession(ctx context.Context, resp *pkgapi.TokenResponse) error {
	session := &storage.SessionData{
		UserID:       resp.User.ID,
		Name:         resp.User.Name,
		Email:        resp.User.Email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}
