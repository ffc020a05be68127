package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/BBongSu/AdvanceKeep/internal/models"
	"github.com/BBongSu/AdvanceKeep/internal/server/storage"
	"github.com/BBongSu/AdvanceKeep/pkg/api"
)

// LabelsHandler serves the label endpoints. Labels are strictly
// single-owner; every operation is scoped to the authenticated user.
type LabelsHandler struct {
	logger  *slog.Logger
	storage storage.LabelStorage
}

// NewLabelsHandler creates a new labels handler
func NewLabelsHandler(logger *slog.Logger, labelStorage storage.LabelStorage) *LabelsHandler {
	return &LabelsHandler{
		logger:  logger,
		storage: labelStorage,
	}
}

// Create handles POST /api/v1/labels
func (h *LabelsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var doc api.Label
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	label := models.LabelFromAPI(doc)
	if label.ID == "" {
		sendError(h.logger, w, "label id is required", http.StatusBadRequest)
		return
	}
	if label.Name == "" {
		sendError(h.logger, w, "label name is required", http.StatusBadRequest)
		return
	}
	label.UserID = userID

	saved, err := h.storage.SaveLabel(ctx, label)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save label", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, saved.ToAPI(), http.StatusCreated)
}

// Update handles PUT /api/v1/labels/{id}
func (h *LabelsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.PathValue("id")

	existing, err := h.storage.GetLabel(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrLabelNotFound) {
			sendError(h.logger, w, "label not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get label", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if existing.UserID != userID {
		sendError(h.logger, w, "not authorized to update this label", http.StatusForbidden)
		return
	}

	var doc api.Label
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	label := models.LabelFromAPI(doc)
	label.ID = id
	label.UserID = userID
	if label.Name == "" {
		sendError(h.logger, w, "label name is required", http.StatusBadRequest)
		return
	}
	if label.CreatedAt.IsZero() {
		label.CreatedAt = existing.CreatedAt
	}

	saved, err := h.storage.SaveLabel(ctx, label)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save label", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, saved.ToAPI(), http.StatusOK)
}

// Delete handles DELETE /api/v1/labels/{id}
func (h *LabelsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.PathValue("id")

	existing, err := h.storage.GetLabel(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrLabelNotFound) {
			sendError(h.logger, w, "label not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get label", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if existing.UserID != userID {
		sendError(h.logger, w, "not authorized to delete this label", http.StatusForbidden)
		return
	}

	if err := h.storage.DeleteLabel(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete label", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Changes handles GET /api/v1/labels/changes?since=N
func (h *LabelsHandler) Changes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	since, err := parseSince(r)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	cursor, err := h.storage.LabelsCursor(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read cursor", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.LabelsResponse{Seq: cursor}
	if cursor != since {
		labels, err := h.storage.ListLabels(ctx, userID)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to list labels", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
		resp.Modified = true
		resp.Labels = make([]api.Label, 0, len(labels))
		for _, label := range labels {
			resp.Labels = append(resp.Labels, label.ToAPI())
		}
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
