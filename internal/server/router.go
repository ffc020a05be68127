// Package server assembles the HTTP API: handlers, middleware chain
// and routing.
package server

import (
	"log/slog"
	"net/http"

	"github.com/BBongSu/AdvanceKeep/internal/server/config"
	"github.com/BBongSu/AdvanceKeep/internal/server/handlers"
	"github.com/BBongSu/AdvanceKeep/internal/server/middleware"
	"github.com/BBongSu/AdvanceKeep/internal/server/storage"
)

// Storages bundles the persistence interfaces the API needs
type Storages struct {
	Users  storage.UserStorage
	Tokens storage.TokenStorage
	Notes  storage.NoteStorage
	Labels storage.LabelStorage
}

// NewRouter builds the full API handler with the middleware chain
// logging -> recovery -> ratelimit, and JWT auth on the protected
// routes
func NewRouter(logger *slog.Logger, cfg *config.Config, storages Storages) http.Handler {
	jwtConfig := handlers.JWTConfig{
		Secret:          []byte(cfg.JWT.Secret),
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, storages.Users, storages.Tokens, jwtConfig)
	usersHandler := handlers.NewUsersHandler(logger, storages.Users)
	notesHandler := handlers.NewNotesHandler(logger, storages.Notes)
	labelsHandler := handlers.NewLabelsHandler(logger, storages.Labels)
	healthHandler := handlers.NewHealthHandler(logger, cfg.Version)

	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)

	mux.Handle("GET /api/v1/users/lookup", protected(usersHandler.Lookup))
	mux.Handle("GET /api/v1/users/{id}", protected(usersHandler.Get))

	mux.Handle("GET /api/v1/notes/changes", protected(notesHandler.Changes))
	mux.Handle("POST /api/v1/notes", protected(notesHandler.Create))
	mux.Handle("PUT /api/v1/notes/{id}", protected(notesHandler.Update))
	mux.Handle("DELETE /api/v1/notes/{id}", protected(notesHandler.Delete))

	mux.Handle("GET /api/v1/labels/changes", protected(labelsHandler.Changes))
	mux.Handle("POST /api/v1/labels", protected(labelsHandler.Create))
	mux.Handle("PUT /api/v1/labels/{id}", protected(labelsHandler.Update))
	mux.Handle("DELETE /api/v1/labels/{id}", protected(labelsHandler.Delete))

	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(cfg.RateLimit.Rate, cfg.RateLimit.Window, logger)(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)

	return handler
}
