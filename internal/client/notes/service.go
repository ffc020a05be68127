// Package notes implements the note synchronization engine: it owns
// the in-memory note list for a logged-in session, applies mutations
// optimistically, merges the owned and shared-with live queries into
// one list and retries failed writes from a durable FIFO queue.
package notes

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BBongSu/AdvanceKeep/internal/client/store"
	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// Service is the engine contract consumed by the UI surfaces.
// All mutations are optimistic: they update local state, return
// immediately and write through to the store in the background, so
// callers must not assume server confirmation by return time.
type Service interface {
	// Subscribe opens the owned and shared-with live queries and
	// invokes onChange with the merged list on every change.
	// The returned unsubscribe handle is idempotent.
	Subscribe(ctx context.Context, onChange func([]*models.Note)) (store.Unsubscribe, error)

	// Notes returns a snapshot copy of the reconciled note list
	Notes() []*models.Note

	// AddNote creates a note owned by the session user and returns
	// the optimistic copy
	AddNote(ctx context.Context, draft Draft) (*models.Note, error)

	// UpdateNote replaces the local note by id and writes through
	UpdateNote(ctx context.Context, note *models.Note) (*models.Note, error)

	// Flag operations. Each flips exactly one lifecycle flag through
	// UpdateNote and silently no-ops when the note is unknown locally.
	MoveToTrash(ctx context.Context, id string) error
	RestoreNote(ctx context.Context, id string) error
	ArchiveNote(ctx context.Context, id string) error
	UnarchiveNote(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) error

	// DeleteForever removes the note permanently. Idempotent.
	DeleteForever(ctx context.Context, id string) error

	// Sharing operations, see share.go for the authorization rules
	ShareWithEmail(ctx context.Context, id, email string) (*models.Note, error)
	Unshare(ctx context.Context, id, targetUserID string) (*models.Note, error)
	UnshareWithEmail(ctx context.Context, id, email string) (*models.Note, error)

	// LastSyncError returns the advisory last write failure, empty
	// when the last write succeeded
	LastSyncError() string

	// PendingCount returns the number of queued retry actions
	PendingCount() int

	// Close stops the retry loop and detaches the subscriptions
	Close() error
}

// Draft is the caller-supplied content for a new note
type Draft struct {
	Title  string
	Text   string
	Images []string
	Color  string
	Labels []string
	Type   models.NoteType
	Items  []models.ChecklistItem
}

type engine struct {
	noteStore store.NoteStore
	identity  store.Identity
	cache     store.SnapshotCache
	logger    *slog.Logger
	user      *models.User // session identity, nil when logged out

	mu            sync.Mutex
	notes         []*models.Note
	pending       []*models.PendingAction
	lastSyncError string
	onChange      func([]*models.Note)

	// latest raw snapshot per upstream stream; merge re-runs whenever
	// either one arrives
	ownedSnap  []*models.Note
	sharedSnap []*models.Note

	namesMu sync.Mutex
	names   map[string]string // best-effort display-name cache

	// retryDelay is swappable in tests; defaults to PendingAction.RetryDelay
	retryDelay func(*models.PendingAction) time.Duration

	inflight  sync.WaitGroup // outstanding write-through goroutines
	retryWake chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	unsubs    []store.Unsubscribe
}

// NewService builds an engine for one login session. State is keyed by
// the session user and rebuilt fresh on every login; it is never shared
// across users. user may be nil (logged out), in which case every
// mutation fails with ErrAuthRequired.
func NewService(
	noteStore store.NoteStore,
	identity store.Identity,
	cache store.SnapshotCache,
	user *models.User,
	logger *slog.Logger,
) Service {
	s := &engine{
		noteStore:  noteStore,
		identity:   identity,
		cache:      cache,
		logger:     logger,
		user:       user,
		names:      make(map[string]string),
		retryDelay: (*models.PendingAction).RetryDelay,
		retryWake:  make(chan struct{}, 1),
		done:       make(chan struct{}),
	}

	if user != nil {
		s.seedFromCache()
	}

	go s.retryLoop()

	return s
}

// seedFromCache loads the last persisted snapshot and pending queue so
// the list renders before the first server emission. Best-effort.
func (s *engine) seedFromCache() {
	ctx := context.Background()

	cached, err := s.cache.LoadNotes(ctx, s.user.ID)
	if err != nil {
		s.logger.Warn("failed to load cached notes", "error", err)
	} else {
		s.notes = cached
	}

	pending, err := s.cache.LoadPending(ctx, s.user.ID)
	if err != nil {
		s.logger.Warn("failed to load pending queue", "error", err)
	} else if len(pending) > 0 {
		s.pending = pending
		s.logger.Info("restored pending actions", "count", len(pending))
		s.wakeRetry()
	}
}

func (s *engine) Subscribe(ctx context.Context, onChange func([]*models.Note)) (store.Unsubscribe, error) {
	if s.user == nil {
		return nil, ErrAuthRequired
	}

	s.mu.Lock()
	s.onChange = onChange
	s.mu.Unlock()

	unsubOwned, err := s.noteStore.WatchOwned(ctx, s.user.ID, s.applyOwned)
	if err != nil {
		return nil, err
	}

	unsubShared, err := s.noteStore.WatchSharedWith(ctx, s.user.ID, s.applyShared)
	if err != nil {
		unsubOwned()
		return nil, err
	}

	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsubOwned, unsubShared)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubOwned()
			unsubShared()
		})
	}, nil
}

func (s *engine) Notes() []*models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneNotes(s.notes)
}

func (s *engine) AddNote(ctx context.Context, draft Draft) (*models.Note, error) {
	if s.user == nil {
		return nil, ErrAuthRequired
	}

	note := s.buildNote(draft)

	s.mu.Lock()
	// Prepend so newest-first views need no re-sort for the common case.
	s.notes = append([]*models.Note{note}, s.notes...)
	s.notifyLocked()
	s.mu.Unlock()

	s.writeThrough(ctx, models.ActionCreate, note.Clone())

	return note.Clone(), nil
}

func (s *engine) buildNote(draft Draft) *models.Note {
	now := time.Now()

	noteType := draft.Type
	if noteType == "" {
		noteType = models.NoteTypeText
	}

	note := &models.Note{
		ID:         uuid.New().String(),
		OwnerID:    s.user.ID,
		OwnerName:  s.user.DisplayName(),
		Title:      draft.Title,
		Color:      draft.Color,
		Type:       noteType,
		Labels:     slices.Clone(draft.Labels),
		Images:     slices.Clone(draft.Images),
		SharedWith: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Exactly one of text/items is meaningful per variant.
	if noteType == models.NoteTypeChecklist {
		note.Items = make([]models.ChecklistItem, 0, len(draft.Items))
		for _, item := range draft.Items {
			if item.ID == "" {
				item.ID = uuid.New().String()
			}
			note.Items = append(note.Items, item)
		}
	} else {
		note.Text = draft.Text
	}

	return note
}

func (s *engine) UpdateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	if s.user == nil {
		return nil, ErrAuthRequired
	}

	updated := note.Clone()
	updated.UpdatedAt = time.Now()

	s.mu.Lock()
	idx := s.indexOfLocked(updated.ID)
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrNoteNotFound
	}
	s.notes[idx] = updated
	s.notifyLocked()
	s.mu.Unlock()

	s.writeThrough(ctx, models.ActionUpdate, updated.Clone())

	return updated.Clone(), nil
}

// flip applies a single-flag change through UpdateNote. Unknown ids are
// a silent no-op: stale UI state must not crash anything.
func (s *engine) flip(ctx context.Context, id string, change func(*models.Note)) error {
	if s.user == nil {
		return ErrAuthRequired
	}

	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	current := s.notes[idx].Clone()
	s.mu.Unlock()

	change(current)
	_, err := s.UpdateNote(ctx, current)
	return err
}

func (s *engine) MoveToTrash(ctx context.Context, id string) error {
	return s.flip(ctx, id, func(n *models.Note) { n.InTrash = true })
}

func (s *engine) RestoreNote(ctx context.Context, id string) error {
	return s.flip(ctx, id, func(n *models.Note) { n.InTrash = false })
}

func (s *engine) ArchiveNote(ctx context.Context, id string) error {
	return s.flip(ctx, id, func(n *models.Note) { n.IsArchived = true })
}

func (s *engine) UnarchiveNote(ctx context.Context, id string) error {
	return s.flip(ctx, id, func(n *models.Note) { n.IsArchived = false })
}

func (s *engine) TogglePin(ctx context.Context, id string) error {
	return s.flip(ctx, id, func(n *models.Note) { n.IsPinned = !n.IsPinned })
}

func (s *engine) DeleteForever(ctx context.Context, id string) error {
	if s.user == nil {
		return ErrAuthRequired
	}

	s.mu.Lock()
	if idx := s.indexOfLocked(id); idx >= 0 {
		s.notes = slices.Delete(s.notes, idx, idx+1)
	}
	// A queued create/update for this note is superseded by the delete.
	s.dropPendingForLocked(id)
	s.notifyLocked()
	s.mu.Unlock()

	s.writeThrough(ctx, models.ActionDelete, &models.Note{ID: id})

	return nil
}

func (s *engine) LastSyncError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSyncError
}

func (s *engine) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *engine) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.mu.Lock()
		unsubs := s.unsubs
		s.unsubs = nil
		s.onChange = nil
		s.mu.Unlock()
		for _, unsub := range unsubs {
			unsub()
		}
	})
	s.inflight.Wait()
	return nil
}

// indexOfLocked finds a note by id. Callers hold s.mu.
func (s *engine) indexOfLocked(id string) int {
	return slices.IndexFunc(s.notes, func(n *models.Note) bool { return n.ID == id })
}

// notifyLocked hands a snapshot copy to the subscriber and persists
// the stripped list to the local cache. Callers hold s.mu.
func (s *engine) notifyLocked() {
	if s.onChange != nil {
		s.onChange(cloneNotes(s.notes))
	}
	s.persistCacheLocked()
}

// persistCacheLocked writes the image-stripped snapshot through to the
// local cache. Failures (quota and the like) are logged and swallowed.
func (s *engine) persistCacheLocked() {
	if s.user == nil {
		return
	}
	stripped := make([]*models.Note, 0, len(s.notes))
	for _, note := range s.notes {
		stripped = append(stripped, note.Stripped())
	}
	if err := s.cache.SaveNotes(context.Background(), s.user.ID, stripped); err != nil {
		s.logger.Warn("cache write skipped", "error", err)
	}
}

func cloneNotes(notes []*models.Note) []*models.Note {
	out := make([]*models.Note, 0, len(notes))
	for _, note := range notes {
		out = append(out, note.Clone())
	}
	return out
}
