package notes

import "errors"

// Errors surfaced to callers. Transient store failures are NOT in this
// list on purpose: mutations swallow them, keep the optimistic state
// and queue a retry (see LastSyncError).
var (
	// ErrAuthRequired indicates a mutation was attempted with no
	// authenticated user
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotAuthorized indicates a sharing transition the caller is
	// not allowed to make
	ErrNotAuthorized = errors.New("not authorized")

	// ErrUserNotFound indicates the share target email has no account
	ErrUserNotFound = errors.New("user not found")

	// ErrSelfShareNotAllowed indicates an attempt to share a note
	// with its own owner
	ErrSelfShareNotAllowed = errors.New("cannot share a note with yourself")

	// ErrNotShared indicates an unshare target that is not in the
	// shared-with set
	ErrNotShared = errors.New("note is not shared with that user")

	// ErrNoteNotFound indicates an operation on a note id the engine
	// does not know locally
	ErrNoteNotFound = errors.New("note not found")
)
