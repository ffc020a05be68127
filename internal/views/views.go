// Package views holds the pure transforms the UI layers apply to the
// reconciled note list: search, scope filtering, sorting and the
// pinned partition. Nothing here mutates its input.
package views

import (
	"slices"
	"strings"

	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// Scope selects one of the mutually exclusive note partitions
type Scope string

const (
	ScopeActive  Scope = "active"
	ScopeArchive Scope = "archive"
	ScopeTrash   Scope = "trash"
)

// SortOrder selects the createdAt sort direction
type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
)

// Query bundles the presentation parameters applied to a note list
type Query struct {
	Search  string
	Scope   Scope
	LabelID string // when set, further restricts the scope to one label
	Order   SortOrder
}

// Search returns the notes matching query by case-insensitive substring
// against title, text and checklist item texts. An empty or whitespace
// query is the identity.
func Search(notes []*models.Note, query string) []*models.Note {
	query = strings.TrimSpace(query)
	if query == "" {
		return notes
	}
	query = strings.ToLower(query)

	matched := make([]*models.Note, 0, len(notes))
	for _, note := range notes {
		if matches(note, query) {
			matched = append(matched, note)
		}
	}
	return matched
}

func matches(note *models.Note, lowered string) bool {
	if strings.Contains(strings.ToLower(note.Title), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(note.Text), lowered) {
		return true
	}
	for _, item := range note.Items {
		if strings.Contains(strings.ToLower(item.Text), lowered) {
			return true
		}
	}
	return false
}

// InScope reports whether note belongs to scope. Trash takes
// precedence: a note that is both trashed and archived appears only
// in trash.
func InScope(note *models.Note, scope Scope) bool {
	switch scope {
	case ScopeTrash:
		return note.InTrash
	case ScopeArchive:
		return note.IsArchived && !note.InTrash
	default:
		return !note.IsArchived && !note.InTrash
	}
}

// FilterScope returns the notes in scope, optionally restricted to
// those carrying labelID
func FilterScope(notes []*models.Note, scope Scope, labelID string) []*models.Note {
	filtered := make([]*models.Note, 0, len(notes))
	for _, note := range notes {
		if !InScope(note, scope) {
			continue
		}
		if labelID != "" && !slices.Contains(note.Labels, labelID) {
			continue
		}
		filtered = append(filtered, note)
	}
	return filtered
}

// SortByCreated returns a copy of notes sorted by createdAt. The sort
// is stable so ties keep their relative order.
func SortByCreated(notes []*models.Note, order SortOrder) []*models.Note {
	sorted := slices.Clone(notes)
	slices.SortStableFunc(sorted, func(a, b *models.Note) int {
		switch {
		case a.CreatedAt.Before(b.CreatedAt):
			if order == SortOldest {
				return -1
			}
			return 1
		case a.CreatedAt.After(b.CreatedAt):
			if order == SortOldest {
				return 1
			}
			return -1
		default:
			return 0
		}
	})
	return sorted
}

// PartitionPinned splits notes into pinned and unpinned, preserving
// order within each group
func PartitionPinned(notes []*models.Note) (pinned, others []*models.Note) {
	for _, note := range notes {
		if note.IsPinned {
			pinned = append(pinned, note)
		} else {
			others = append(others, note)
		}
	}
	return pinned, others
}

// Apply runs the full presentation pipeline: scope filter, search,
// sort, then the pinned group first. This is what list views render.
func Apply(notes []*models.Note, q Query) []*models.Note {
	scoped := FilterScope(notes, q.Scope, q.LabelID)
	scoped = Search(scoped, q.Search)
	scoped = SortByCreated(scoped, q.Order)

	pinned, others := PartitionPinned(scoped)
	return append(pinned, others...)
}

// ResolveLabels maps a note's label ids onto the user's labels.
// Dangling ids (label deleted while still referenced) are silently
// dropped here instead of being cascade-cleaned on label delete.
func ResolveLabels(note *models.Note, labels []*models.Label) []*models.Label {
	byID := make(map[string]*models.Label, len(labels))
	for _, label := range labels {
		byID[label.ID] = label
	}

	resolved := make([]*models.Label, 0, len(note.Labels))
	for _, id := range note.Labels {
		if label, ok := byID[id]; ok {
			resolved = append(resolved, label)
		}
	}
	return resolved
}
