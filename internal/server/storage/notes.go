package storage

import (
	"context"

	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// NoteStorage defines interface for note document persistence.
//
// Every write advances the change cursor for the owner's owned scope
// and for the shared scope of every user the note is (or was) shared
// with. Clients poll the cursor and refetch only when it moved.
type NoteStorage interface {
	// SaveNote creates or replaces the note document wholesale
	SaveNote(ctx context.Context, note *models.Note) (*models.Note, error)

	// GetNote retrieves a single note by ID
	// Returns ErrNoteNotFound if note doesn't exist
	GetNote(ctx context.Context, id string) (*models.Note, error)

	// DeleteNote removes the note and its share relations
	// Returns ErrNoteNotFound if note doesn't exist
	DeleteNote(ctx context.Context, id string) error

	// ListOwned retrieves all notes owned by a user, newest first
	// Returns empty slice if no notes found
	ListOwned(ctx context.Context, userID string) ([]*models.Note, error)

	// ListSharedWith retrieves all notes shared with a user, newest first
	// Returns empty slice if no notes found
	ListSharedWith(ctx context.Context, userID string) ([]*models.Note, error)

	// OwnedCursor returns the change cursor of the user's owned scope
	OwnedCursor(ctx context.Context, userID string) (int64, error)

	// SharedCursor returns the change cursor of the user's shared scope
	SharedCursor(ctx context.Context, userID string) (int64, error)
}
