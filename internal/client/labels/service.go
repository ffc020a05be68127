// Package labels mirrors the remote label collection for a logged-in
// session: one live query, optimistic mutations, best-effort cache.
// Labels are single-owner, there is no sharing dimension.
package labels

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BBongSu/AdvanceKeep/internal/client/store"
	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// Service is the label mirror consumed by the UI surfaces
type Service interface {
	// Subscribe opens the live query and invokes onChange with the
	// full label list on every change, ordered oldest first.
	Subscribe(ctx context.Context, onChange func([]*models.Label)) (store.Unsubscribe, error)

	// Labels returns a snapshot copy of the current label list
	Labels() []*models.Label

	// AddLabel creates a label. Empty or whitespace-only names are a
	// silent no-op returning nil, matching how empty notes are treated.
	AddLabel(ctx context.Context, name string) (*models.Label, error)

	// EditLabel renames a label; empty names are a silent no-op
	EditLabel(ctx context.Context, id, name string) error

	// RemoveLabel deletes the label unconditionally. Notes keep any
	// dangling references; the view layer filters those at render time.
	RemoveLabel(ctx context.Context, id string) error

	Close() error
}

type mirror struct {
	labelStore store.LabelStore
	cache      store.SnapshotCache
	logger     *slog.Logger
	user       *models.User

	mu       sync.Mutex
	labels   []*models.Label
	onChange func([]*models.Label)
	unsubs   []store.Unsubscribe

	inflight  sync.WaitGroup
	closeOnce sync.Once
}

func NewService(
	labelStore store.LabelStore,
	cache store.SnapshotCache,
	user *models.User,
	logger *slog.Logger,
) Service {
	s := &mirror{
		labelStore: labelStore,
		cache:      cache,
		logger:     logger,
		user:       user,
	}

	if user != nil {
		s.seedFromCache()
	}

	return s
}

func (s *mirror) seedFromCache() {
	cached, err := s.cache.LoadLabels(context.Background(), s.user.ID)
	if err != nil {
		s.logger.Warn("failed to load cached labels", "error", err)
		return
	}
	s.labels = cached
}

func (s *mirror) Subscribe(ctx context.Context, onChange func([]*models.Label)) (store.Unsubscribe, error) {
	if s.user == nil {
		return nil, ErrAuthRequired
	}

	s.mu.Lock()
	s.onChange = onChange
	s.mu.Unlock()

	unsub, err := s.labelStore.WatchLabels(ctx, s.user.ID, s.apply)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsub)
	s.mu.Unlock()

	var once sync.Once
	return func() { once.Do(unsub) }, nil
}

// apply replaces the mirror wholesale with the server snapshot,
// ordered oldest first so new labels append at the bottom of pickers.
func (s *mirror) apply(snap []*models.Label) {
	sorted := make([]*models.Label, 0, len(snap))
	for _, label := range snap {
		sorted = append(sorted, label.Clone())
	}
	slices.SortStableFunc(sorted, func(a, b *models.Label) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	s.mu.Lock()
	s.labels = sorted
	s.notifyLocked()
	s.mu.Unlock()
}

func (s *mirror) Labels() []*models.Label {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLabels(s.labels)
}

func (s *mirror) AddLabel(ctx context.Context, name string) (*models.Label, error) {
	if s.user == nil {
		return nil, ErrAuthRequired
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	label := &models.Label{
		ID:        uuid.New().String(),
		UserID:    s.user.ID,
		Name:      name,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.labels = append(s.labels, label)
	s.notifyLocked()
	s.mu.Unlock()

	s.writeThrough(ctx, func(ctx context.Context) error {
		_, err := s.labelStore.CreateLabel(ctx, label.Clone())
		return err
	})

	return label.Clone(), nil
}

func (s *mirror) EditLabel(ctx context.Context, id, name string) error {
	if s.user == nil {
		return ErrAuthRequired
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	s.mu.Lock()
	idx := slices.IndexFunc(s.labels, func(l *models.Label) bool { return l.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return ErrLabelNotFound
	}
	updated := s.labels[idx].Clone()
	updated.Name = name
	s.labels[idx] = updated
	s.notifyLocked()
	s.mu.Unlock()

	s.writeThrough(ctx, func(ctx context.Context) error {
		_, err := s.labelStore.UpdateLabel(ctx, updated.Clone())
		return err
	})

	return nil
}

func (s *mirror) RemoveLabel(ctx context.Context, id string) error {
	if s.user == nil {
		return ErrAuthRequired
	}

	s.mu.Lock()
	s.labels = slices.DeleteFunc(s.labels, func(l *models.Label) bool { return l.ID == id })
	s.notifyLocked()
	s.mu.Unlock()

	s.writeThrough(ctx, func(ctx context.Context) error {
		return s.labelStore.DeleteLabel(ctx, id)
	})

	return nil
}

// writeThrough runs the store write detached from the caller. Label
// writes are not queued for retry: the next subscription emission
// re-converges the mirror either way, and labels are cheap to redo.
func (s *mirror) writeThrough(ctx context.Context, write func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		if err := write(ctx); err != nil {
			s.logger.Warn("label write failed", "error", err)
		}
	}()
}

func (s *mirror) notifyLocked() {
	if s.onChange != nil {
		s.onChange(cloneLabels(s.labels))
	}
	s.persistCacheLocked()
}

func (s *mirror) persistCacheLocked() {
	if s.user == nil {
		return
	}
	if err := s.cache.SaveLabels(context.Background(), s.user.ID, s.labels); err != nil {
		s.logger.Warn("label cache write skipped", "error", err)
	}
}

func (s *mirror) Close() error {
	s.closeOnce.Do(func() {
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

func cloneLabels(labels []*models.Label) []*models.Label {
	out := make([]*models.Label, 0, len(labels))
	for _, label := range labels {
		out = append(out, label.Clone())
	}
	return out
}
