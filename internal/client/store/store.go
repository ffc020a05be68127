// Package store declares the capabilities the client consumes: the
// remote document store (notes + labels), the user directory and the
// local snapshot cache. The sync engine is written against these
// interfaces only; the HTTP realization lives in internal/client/api
// and the bbolt cache in internal/client/storage/boltdb.
package store

import (
	"context"

	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// Unsubscribe detaches a live query. Implementations must make it
// idempotent: calling it twice is a no-op.
type Unsubscribe func()

//go:generate moq -out notes_mock.go . NoteStore

// NoteStore is the remote note collection. Writes have at-least-once
// semantics; the two Watch queries emit the full current result set
// whenever it changes.
type NoteStore interface {
	// CreateNote stores a new note document and returns the stored copy
	CreateNote(ctx context.Context, note *models.Note) (*models.Note, error)

	// UpdateNote replaces the note document by id and returns the stored copy
	UpdateNote(ctx context.Context, note *models.Note) (*models.Note, error)

	// DeleteNote removes the note document. Deleting an absent id is a no-op.
	DeleteNote(ctx context.Context, id string) error

	// WatchOwned opens a live query over notes with owner == userID
	WatchOwned(ctx context.Context, userID string, onChange func([]*models.Note)) (Unsubscribe, error)

	// WatchSharedWith opens a live query over notes whose sharedWith
	// contains userID
	WatchSharedWith(ctx context.Context, userID string, onChange func([]*models.Note)) (Unsubscribe, error)
}

//go:generate moq -out labels_mock.go . LabelStore

// LabelStore is the remote label collection, same contract as
// NoteStore but scoped to a single user
type LabelStore interface {
	CreateLabel(ctx context.Context, label *models.Label) (*models.Label, error)
	UpdateLabel(ctx context.Context, label *models.Label) (*models.Label, error)
	DeleteLabel(ctx context.Context, id string) error
	WatchLabels(ctx context.Context, userID string, onChange func([]*models.Label)) (Unsubscribe, error)
}

//go:generate moq -out identity_mock.go . Identity

// Identity is the user directory capability
type Identity interface {
	// ResolveUserByEmail finds a user by email.
	// Returns ErrUserNotFound when no such account exists.
	ResolveUserByEmail(ctx context.Context, email string) (*models.User, error)

	// LookupUser fetches the directory entry for a user id.
	// Best-effort: callers annotating display names degrade to a
	// placeholder on error instead of failing.
	LookupUser(ctx context.Context, id string) (*models.User, error)
}

//go:generate moq -out cache_mock.go . SnapshotCache

// SnapshotCache is the local persistence capability: a per-user,
// best-effort mirror used for cold-start display and for keeping the
// pending-action queue across restarts. Implementations must tolerate
// quota problems by returning an error the caller can swallow.
type SnapshotCache interface {
	SaveNotes(ctx context.Context, userID string, notes []*models.Note) error
	LoadNotes(ctx context.Context, userID string) ([]*models.Note, error)

	SaveLabels(ctx context.Context, userID string, labels []*models.Label) error
	LoadLabels(ctx context.Context, userID string) ([]*models.Label, error)

	SavePending(ctx context.Context, userID string, actions []*models.PendingAction) error
	LoadPending(ctx context.Context, userID string) ([]*models.PendingAction, error)
}
