package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/BBongSu/AdvanceKeep/internal/server/storage"
	"github.com/BBongSu/AdvanceKeep/pkg/api"
)

// UsersHandler serves the user directory endpoints used to resolve
// share targets and display names
type UsersHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(logger *slog.Logger, userStorage storage.UserStorage) *UsersHandler {
	return &UsersHandler{
		logger:      logger,
		userStorage: userStorage,
	}
}

// Lookup handles GET /api/v1/users/lookup?email=
func (h *UsersHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := r.URL.Query().Get("email")
	if email == "" {
		sendError(h.logger, w, "email is required", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to look up user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.User{ID: user.ID, Name: user.Name, Email: user.Email}, http.StatusOK)
}

// Get handles GET /api/v1/users/{id}
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "user id is required", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.User{ID: user.ID, Name: user.Name, Email: user.Email}, http.StatusOK)
}
