package notes

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// maxAttempts bounds retries per action. The source kept failing
// actions queued forever; that leaks work, so past this bound the
// action is dropped with an error log. The optimistic local state is
// untouched by the drop.
const maxAttempts = 50

// writeThrough issues the store write in the background and returns
// immediately. The caller already applied the mutation optimistically.
// The write is detached from the caller's cancellation: in-flight
// writes are not abortable, their outcome is folded in whenever they
// finish.
func (s *engine) writeThrough(ctx context.Context, kind models.ActionKind, note *models.Note) {
	ctx = context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		confirmed, err := s.execute(ctx, kind, note)
		if err != nil {
			s.logger.Warn("write-through failed, queuing retry",
				"kind", kind, "note_id", note.ID, "error", err)
			s.recordFailure(err)
			s.enqueue(kind, note)
			return
		}

		s.clearFailure()
		s.confirm(kind, confirmed)
	}()
}

func (s *engine) execute(ctx context.Context, kind models.ActionKind, note *models.Note) (*models.Note, error) {
	switch kind {
	case models.ActionCreate:
		return s.noteStore.CreateNote(ctx, note)
	case models.ActionUpdate:
		return s.noteStore.UpdateNote(ctx, note)
	default:
		return nil, s.noteStore.DeleteNote(ctx, note.ID)
	}
}

// confirm folds a server-confirmed copy back into local state. The id
// is stable across the optimistic->confirmed transition, so this is a
// plain replace; it can overwrite a newer optimistic edit when the
// races are close (accepted, see remerge).
func (s *engine) confirm(kind models.ActionKind, confirmed *models.Note) {
	if kind == models.ActionDelete || confirmed == nil {
		return
	}
	s.mu.Lock()
	if idx := s.indexOfLocked(confirmed.ID); idx >= 0 {
		confirmed = confirmed.Clone()
		confirmed.OwnerName = s.notes[idx].OwnerName
		s.notes[idx] = confirmed
		s.notifyLocked()
	}
	s.mu.Unlock()
}

// enqueue adds a failed mutation to the retry queue. A queued action
// for the same note is superseded in place rather than doubled: a
// note is only ever covered by one pending action at a time, which is
// what keeps same-note ordering trivial.
func (s *engine) enqueue(kind models.ActionKind, note *models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, action := range s.pending {
		if action.NoteID != note.ID {
			continue
		}
		// An unconfirmed create absorbs later edits and stays a
		// create; anything else takes the newer kind and payload.
		if !(action.Kind == models.ActionCreate && kind == models.ActionUpdate) {
			action.Kind = kind
		}
		action.Note = note
		action.Attempts = 0
		s.persistPendingLocked()
		s.wakeRetry()
		return
	}

	s.pending = append(s.pending, &models.PendingAction{
		ID:         uuid.New().String(),
		Kind:       kind,
		NoteID:     note.ID,
		Note:       note,
		Attempts:   0,
		EnqueuedAt: time.Now(),
	})
	s.persistPendingLocked()
	s.wakeRetry()
}

// dropPendingForLocked removes queued actions for a note. Callers hold
// s.mu. Used when a delete supersedes whatever was queued.
func (s *engine) dropPendingForLocked(noteID string) {
	s.pending = slices.DeleteFunc(s.pending, func(a *models.PendingAction) bool {
		return a.NoteID == noteID
	})
	s.persistPendingLocked()
}

func (s *engine) persistPendingLocked() {
	if s.user == nil {
		return
	}
	if err := s.cache.SavePending(context.Background(), s.user.ID, s.pending); err != nil {
		s.logger.Warn("pending queue persist skipped", "error", err)
	}
}

func (s *engine) recordFailure(err error) {
	s.mu.Lock()
	s.lastSyncError = err.Error()
	s.mu.Unlock()
}

func (s *engine) clearFailure() {
	s.mu.Lock()
	s.lastSyncError = ""
	s.mu.Unlock()
}

func (s *engine) wakeRetry() {
	select {
	case s.retryWake <- struct{}{}:
	default:
	}
}

// retryLoop drains the pending queue strictly from the head. Later
// actions wait behind an earlier failing one so write order per note
// is preserved; a failing head is requeued to the tail with its
// attempt count bumped, so different notes still make progress while
// a persistently failing action never blocks the queue outright.
func (s *engine) retryLoop() {
	for {
		head := s.peekHead()
		if head == nil {
			select {
			case <-s.done:
				return
			case <-s.retryWake:
				continue
			}
		}

		if delay := s.retryDelay(head); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-s.done:
				timer.Stop()
				return
			case <-timer.C:
			}
		} else {
			select {
			case <-s.done:
				return
			default:
			}
		}

		confirmed, err := s.execute(context.Background(), head.Kind, head.Note)
		s.settleHead(head, confirmed, err)
	}
}

// peekHead snapshots the head action. Note payloads are never mutated
// in place (supersede swaps the pointer), so a shallow copy is a
// consistent view even while enqueue rewrites the queued action.
func (s *engine) peekHead() *models.PendingAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil
	}
	head := *s.pending[0]
	return &head
}

// settleHead folds the outcome of a retry attempt back into the queue
func (s *engine) settleHead(head *models.PendingAction, confirmed *models.Note, err error) {
	s.mu.Lock()

	idx := slices.IndexFunc(s.pending, func(a *models.PendingAction) bool { return a.ID == head.ID })
	if idx < 0 {
		// Dropped while in flight (e.g. the note was deleted).
		s.mu.Unlock()
		return
	}
	action := s.pending[idx]

	if err == nil {
		if action.Note != head.Note || action.Kind != head.Kind {
			// Superseded while in flight: the attempt confirmed a
			// stale payload, the newer one stays queued.
			s.mu.Unlock()
			return
		}
		s.pending = slices.Delete(s.pending, idx, idx+1)
		s.lastSyncError = ""
		s.persistPendingLocked()
		s.mu.Unlock()
		s.confirm(head.Kind, confirmed)
		return
	}

	s.lastSyncError = err.Error()
	action.Attempts++

	if action.Attempts >= maxAttempts {
		s.logger.Error("dropping pending action after too many attempts",
			"kind", action.Kind, "note_id", action.NoteID, "attempts", action.Attempts)
		s.pending = slices.Delete(s.pending, idx, idx+1)
	} else {
		// Move to tail so queued actions for other notes get a chance.
		s.pending = slices.Delete(s.pending, idx, idx+1)
		s.pending = append(s.pending, action)
	}
	s.persistPendingLocked()
	s.mu.Unlock()
}
