package notes

import (
	"context"
	"slices"

	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// placeholderName is used when a display-name lookup fails; a lookup
// failure must never fail the merge.
const placeholderName = "someone"

func (s *engine) applyOwned(snap []*models.Note) {
	s.mu.Lock()
	s.ownedSnap = snap
	s.mu.Unlock()
	s.remerge()
}

func (s *engine) applyShared(snap []*models.Note) {
	s.mu.Lock()
	s.sharedSnap = snap
	s.mu.Unlock()
	s.remerge()
}

// remerge recombines the freshest snapshot of each stream into one
// de-duplicated list and replaces the engine state wholesale: once the
// server has confirmed a write, its state wins over the optimistic
// copy. Unconfirmed pending actions are re-applied on top so queued
// work stays visible until it lands.
//
// A late-arriving snapshot can overwrite a newer optimistic edit when
// the two race closely. That window is inherited behavior; see the
// design notes before "fixing" it.
func (s *engine) remerge() {
	s.mu.Lock()
	merged := mergeStreams(s.ownedSnap, s.sharedSnap)
	s.mu.Unlock()

	// Name resolution does I/O, keep it outside the state lock.
	s.annotate(merged)

	s.mu.Lock()
	s.notes = overlayPending(merged, s.pending)
	s.notifyLocked()
	s.mu.Unlock()
}

// mergeStreams concatenates the owner stream ahead of the shared
// stream and keeps the first occurrence per id, so a note the owner
// also shares out appears exactly once.
func mergeStreams(owned, shared []*models.Note) []*models.Note {
	merged := make([]*models.Note, 0, len(owned)+len(shared))
	seen := make(map[string]bool, len(owned)+len(shared))

	for _, note := range owned {
		if seen[note.ID] {
			continue
		}
		seen[note.ID] = true
		merged = append(merged, note.Clone())
	}
	for _, note := range shared {
		if seen[note.ID] {
			continue
		}
		seen[note.ID] = true
		merged = append(merged, note.Clone())
	}
	return merged
}

// overlayPending re-applies unconfirmed queued mutations to a fresh
// server snapshot: queued creates not yet on the server are restored,
// queued updates overlay the server copy, queued deletes hide the note.
func overlayPending(merged []*models.Note, pending []*models.PendingAction) []*models.Note {
	for _, action := range pending {
		idx := slices.IndexFunc(merged, func(n *models.Note) bool { return n.ID == action.NoteID })
		switch action.Kind {
		case models.ActionCreate, models.ActionUpdate:
			if action.Note == nil {
				continue
			}
			if idx >= 0 {
				merged[idx] = action.Note.Clone()
			} else {
				merged = append([]*models.Note{action.Note.Clone()}, merged...)
			}
		case models.ActionDelete:
			if idx >= 0 {
				merged = slices.Delete(merged, idx, idx+1)
			}
		}
	}
	return merged
}

// annotate fills in owner and sharer display names, best-effort
func (s *engine) annotate(notes []*models.Note) {
	for _, note := range notes {
		note.OwnerName = s.resolveName(note.Owner())

		if len(note.SharedWith) == 0 {
			continue
		}
		names := make([]string, 0, len(note.SharedWith))
		for _, id := range note.SharedWith {
			names = append(names, s.resolveName(id))
		}
		note.SharedWithNames = names
	}
}

func (s *engine) resolveName(userID string) string {
	if userID == "" {
		return placeholderName
	}
	if s.user != nil && userID == s.user.ID {
		return s.user.DisplayName()
	}

	s.namesMu.Lock()
	name, ok := s.names[userID]
	s.namesMu.Unlock()
	if ok {
		return name
	}

	user, err := s.identity.LookupUser(context.Background(), userID)
	if err != nil || user == nil {
		s.logger.Debug("display name lookup failed", "user_id", userID, "error", err)
		return placeholderName
	}

	s.namesMu.Lock()
	s.names[userID] = user.DisplayName()
	s.namesMu.Unlock()
	return user.DisplayName()
}
