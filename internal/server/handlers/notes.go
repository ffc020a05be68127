package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/BBongSu/AdvanceKeep/internal/models"
	"github.com/BBongSu/AdvanceKeep/internal/server/storage"
	"github.com/BBongSu/AdvanceKeep/pkg/api"
)

// NotesHandler serves the note document endpoints.
//
// Ownership is enforced server-side, mirroring the client authority:
// the owner may do anything; a shared member may update content but the
// only share-set transition allowed to them is removing exactly
// themselves.
type NotesHandler struct {
	logger  *slog.Logger
	storage storage.NoteStorage
}

// NewNotesHandler creates a new notes handler
func NewNotesHandler(logger *slog.Logger, noteStorage storage.NoteStorage) *NotesHandler {
	return &NotesHandler{
		logger:  logger,
		storage: noteStorage,
	}
}

// Create handles POST /api/v1/notes
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var doc api.Note
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	note := models.NoteFromAPI(doc)
	if note.ID == "" {
		sendError(h.logger, w, "note id is required", http.StatusBadRequest)
		return
	}
	if note.Owner() == "" {
		note.OwnerID = userID
	}
	if note.Owner() != userID {
		sendError(h.logger, w, "cannot create a note for another user", http.StatusForbidden)
		return
	}

	saved, err := h.storage.SaveNote(ctx, note)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, saved.ToAPI(), http.StatusCreated)
}

// Update handles PUT /api/v1/notes/{id}
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.PathValue("id")

	existing, err := h.storage.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			sendError(h.logger, w, "note not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	var doc api.Note
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	note := models.NoteFromAPI(doc)
	note.ID = id
	// Ownership is immutable; whatever the body claims, keep the record's.
	note.OwnerID = existing.OwnerID
	note.LegacyUserID = existing.LegacyUserID

	if err := h.authorizeUpdate(userID, existing, note); err != nil {
		h.logger.WarnContext(ctx, "note update rejected",
			slog.String("note_id", id),
			slog.String("user_id", userID),
			slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusForbidden)
		return
	}

	saved, err := h.storage.SaveNote(ctx, note)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, saved.ToAPI(), http.StatusOK)
}

// Delete handles DELETE /api/v1/notes/{id}
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.PathValue("id")

	existing, err := h.storage.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			// Deletes are idempotent from the client's point of view.
			sendError(h.logger, w, "note not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if existing.Owner() != userID {
		sendError(h.logger, w, "only the owner can delete a note", http.StatusForbidden)
		return
	}

	if err := h.storage.DeleteNote(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Changes handles GET /api/v1/notes/changes?scope=owned|shared&since=N.
// When the scope cursor still equals since the response carries no
// documents, so idle polls stay cheap.
func (h *NotesHandler) Changes(w http.ResponseWriter, r *http.Request) {
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

	scope := r.URL.Query().Get("scope")

	var cursor int64
	var list func() ([]*models.Note, error)

	switch scope {
	case "owned":
		cursor, err = h.storage.OwnedCursor(ctx, userID)
		list = func() ([]*models.Note, error) { return h.storage.ListOwned(ctx, userID) }
	case "shared":
		cursor, err = h.storage.SharedCursor(ctx, userID)
		list = func() ([]*models.Note, error) { return h.storage.ListSharedWith(ctx, userID) }
	default:
		sendError(h.logger, w, "scope must be owned or shared", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read cursor", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.NotesResponse{Seq: cursor}
	if cursor != since {
		notes, err := list()
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to list notes", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
		resp.Modified = true
		resp.Notes = make([]api.Note, 0, len(notes))
		for _, note := range notes {
			resp.Notes = append(resp.Notes, note.ToAPI())
		}
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// authorizeUpdate applies the ownership authority to a proposed write
func (h *NotesHandler) authorizeUpdate(userID string, existing, next *models.Note) error {
	if existing.Owner() == userID {
		return nil
	}

	if !slices.Contains(existing.SharedWith, userID) {
		return errors.New("not authorized to update this note")
	}

	// Shared members may edit content. Share-set transitions are
	// restricted to removing exactly themselves.
	if slices.Equal(sortedSet(existing.SharedWith), sortedSet(next.SharedWith)) {
		return nil
	}
	if isExactSelfRemoval(userID, existing.SharedWith, next.SharedWith) {
		return nil
	}

	return errors.New("shared users may only remove themselves from a share")
}

// isExactSelfRemoval reports whether next equals existing minus userID,
// verified by set difference in both directions
func isExactSelfRemoval(userID string, existing, next []string) bool {
	removed := setDifference(existing, next)
	added := setDifference(next, existing)
	return len(added) == 0 && len(removed) == 1 && removed[0] == userID
}

func setDifference(a, b []string) []string {
	out := []string{}
	for _, v := range a {
		if !slices.Contains(b, v) {
			out = append(out, v)
		}
	}
	return out
}

func sortedSet(values []string) []string {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

func parseSince(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		return 0, nil
	}
	since, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("since must be an integer")
	}
	return since, nil
}
