package notes

import (
	"context"
	"errors"
	"slices"

	"github.com/BBongSu/AdvanceKeep/internal/client/store"
	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// Sharing authorization is enforced here, on the client, because every
// device writes through the same optimistic path before the store sees
// anything. The gate is deliberately conservative: ambiguous
// transitions are rejected, never guessed.

// IsOwner reports whether userID owns note, honoring the legacy owner
// field through Note.Owner.
func IsOwner(note *models.Note, userID string) bool {
	return userID != "" && note.Owner() == userID
}

// ShareWithEmail grants the user behind email access to the note.
// Owner-only. Sharing with an already-present target is a no-op that
// returns the unchanged note.
func (s *engine) ShareWithEmail(ctx context.Context, id, email string) (*models.Note, error) {
	if s.user == nil {
		return nil, ErrAuthRequired
	}

	note, err := s.findNote(id)
	if err != nil {
		return nil, err
	}
	if !IsOwner(note, s.user.ID) {
		return nil, ErrNotAuthorized
	}

	target, err := s.resolveEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if target.ID == s.user.ID {
		return nil, ErrSelfShareNotAllowed
	}
	if note.IsSharedWith(target.ID) {
		return note, nil
	}

	next := dedupe(append(slices.Clone(note.SharedWith), target.ID))

	// The name list is only kept when it can stay positionally aligned
	// with the id list; otherwise it is dropped and re-derived on the
	// next subscription merge.
	var nextNames []string
	if len(note.SharedWithNames) == len(note.SharedWith) {
		nextNames = append(slices.Clone(note.SharedWithNames), target.DisplayName())
	}

	return s.setSharedUsers(ctx, note, next, nextNames)
}

// Unshare removes targetUserID from the note's shared-with set.
// The owner may remove anyone; anyone else may only remove themself.
func (s *engine) Unshare(ctx context.Context, id, targetUserID string) (*models.Note, error) {
	if s.user == nil {
		return nil, ErrAuthRequired
	}

	note, err := s.findNote(id)
	if err != nil {
		return nil, err
	}

	if IsOwner(note, s.user.ID) {
		if !note.IsSharedWith(targetUserID) {
			return nil, ErrNotShared
		}
	} else if targetUserID != s.user.ID {
		return nil, ErrNotAuthorized
	}

	next := make([]string, 0, len(note.SharedWith))
	var nextNames []string
	aligned := len(note.SharedWithNames) == len(note.SharedWith)
	for i, uid := range note.SharedWith {
		if uid == targetUserID {
			continue
		}
		next = append(next, uid)
		if aligned {
			nextNames = append(nextNames, note.SharedWithNames[i])
		}
	}

	return s.setSharedUsers(ctx, note, next, nextNames)
}

// UnshareWithEmail resolves email and delegates to Unshare
func (s *engine) UnshareWithEmail(ctx context.Context, id, email string) (*models.Note, error) {
	if s.user == nil {
		return nil, ErrAuthRequired
	}

	target, err := s.resolveEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return s.Unshare(ctx, id, target.ID)
}

// setSharedUsers is the authorization gate both sharing paths funnel
// through. Owners may make any transition; a non-owner may only remove
// exactly themself, verified by set difference.
func (s *engine) setSharedUsers(ctx context.Context, note *models.Note, nextIDs, nextNames []string) (*models.Note, error) {
	if !IsOwner(note, s.user.ID) {
		if !subset(nextIDs, note.SharedWith) {
			return nil, ErrNotAuthorized
		}
		removed := difference(note.SharedWith, nextIDs)
		if len(removed) != 1 || removed[0] != s.user.ID {
			return nil, ErrNotAuthorized
		}
	}

	updated := note.Clone()
	updated.SharedWith = nextIDs
	if len(nextNames) == len(nextIDs) {
		updated.SharedWithNames = nextNames
	} else {
		updated.SharedWithNames = nil
	}

	return s.UpdateNote(ctx, updated)
}

func (s *engine) findNote(id string) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		return nil, ErrNoteNotFound
	}
	return s.notes[idx].Clone(), nil
}

func (s *engine) resolveEmail(ctx context.Context, email string) (*models.User, error) {
	target, err := s.identity.ResolveUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}
	return target, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// subset reports whether every element of next is in prev
func subset(next, prev []string) bool {
	for _, id := range next {
		if !slices.Contains(prev, id) {
			return false
		}
	}
	return true
}

// difference returns the elements of prev not present in next
func difference(prev, next []string) []string {
	var out []string
	for _, id := range prev {
		if !slices.Contains(next, id) {
			out = append(out, id)
		}
	}
	return out
}
