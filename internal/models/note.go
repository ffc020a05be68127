package models

import (
	"slices"
	"time"

	"github.com/BBongSu/AdvanceKeep/pkg/api"
)

// NoteType tags the note variant
type NoteType string

const (
	NoteTypeText      NoteType = "text"      // free-form text body
	NoteTypeChecklist NoteType = "checklist" // ordered checklist items, Text unused
)

// ChecklistItem is one entry of a checklist note
type ChecklistItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Note is a user's piece of content. The ID is assigned client-side at
// creation time, so an optimistic insert and its server-confirmed copy
// share identity and never get re-keyed.
type Note struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	// LegacyUserID is the owner field written by pre-rename records.
	// Always read ownership through Owner(), never through the fields.
	LegacyUserID string `json:"userId,omitempty"`

	Title  string   `json:"title,omitempty"`
	Text   string   `json:"text,omitempty"`
	Images []string `json:"images,omitempty"`
	Color  string   `json:"color,omitempty"` // theme token, empty = default

	Type  NoteType        `json:"type"`
	Items []ChecklistItem `json:"items,omitempty"`

	Labels []string `json:"labels,omitempty"`

	IsPinned   bool `json:"isPinned"`
	IsArchived bool `json:"isArchived"`
	InTrash    bool `json:"inTrash"`

	// SharedWith never contains the owner. SharedWithNames, when present,
	// is kept positionally aligned with SharedWith for display.
	SharedWith      []string `json:"sharedWith,omitempty"`
	SharedWithNames []string `json:"sharedWithNames,omitempty"`

	// OwnerName is annotated during subscription merge for display.
	// It is client-side only and never written back to the store.
	OwnerName string `json:"-"`
}

// Owner returns the effective owner id, falling back to the legacy
// userId field for older records. This is the only place the fallback
// lives.
func (n *Note) Owner() string {
	if n.OwnerID != "" {
		return n.OwnerID
	}
	return n.LegacyUserID
}

// IsEmpty reports whether the note has no content at all
func (n *Note) IsEmpty() bool {
	if n.Title != "" || n.Text != "" || len(n.Images) > 0 {
		return false
	}
	for _, item := range n.Items {
		if item.Text != "" {
			return false
		}
	}
	return len(n.Items) == 0
}

// IsSharedWith reports whether userID is in the shared-with set
func (n *Note) IsSharedWith(userID string) bool {
	return slices.Contains(n.SharedWith, userID)
}

// VisibleTo reports whether userID may see this note
func (n *Note) VisibleTo(userID string) bool {
	return n.Owner() == userID || n.IsSharedWith(userID)
}

// Clone returns a deep copy. The engine hands clones to consumers so
// its own state is never aliased.
func (n *Note) Clone() *Note {
	c := *n
	c.Images = slices.Clone(n.Images)
	c.Items = slices.Clone(n.Items)
	c.Labels = slices.Clone(n.Labels)
	c.SharedWith = slices.Clone(n.SharedWith)
	c.SharedWithNames = slices.Clone(n.SharedWithNames)
	return &c
}

// Stripped returns a copy with image payloads removed.
// Used for the local metadata cache, which mirrors everything except
// large binary fields.
func (n *Note) Stripped() *Note {
	c := n.Clone()
	c.Images = nil
	return c
}

// ToAPI converts the note to its wire shape
func (n *Note) ToAPI() api.Note {
	items := make([]api.ChecklistItem, 0, len(n.Items))
	for _, item := range n.Items {
		items = append(items, api.ChecklistItem(item))
	}
	return api.Note{
		ID:              n.ID,
		OwnerID:         n.OwnerID,
		LegacyUserID:    n.LegacyUserID,
		Title:           n.Title,
		Text:            n.Text,
		Images:          slices.Clone(n.Images),
		Color:           n.Color,
		Type:            string(n.Type),
		Items:           items,
		Labels:          slices.Clone(n.Labels),
		IsPinned:        n.IsPinned,
		IsArchived:      n.IsArchived,
		InTrash:         n.InTrash,
		SharedWith:      slices.Clone(n.SharedWith),
		SharedWithNames: slices.Clone(n.SharedWithNames),
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
	}
}

// NoteFromAPI converts a wire document into the domain type
func NoteFromAPI(doc api.Note) *Note {
	items := make([]ChecklistItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, ChecklistItem(item))
	}
	return &Note{
		ID:              doc.ID,
		OwnerID:         doc.OwnerID,
		LegacyUserID:    doc.LegacyUserID,
		Title:           doc.Title,
		Text:            doc.Text,
		Images:          slices.Clone(doc.Images),
		Color:           doc.Color,
		Type:            NoteType(doc.Type),
		Items:           items,
		Labels:          slices.Clone(doc.Labels),
		IsPinned:        doc.IsPinned,
		IsArchived:      doc.IsArchived,
		InTrash:         doc.InTrash,
		SharedWith:      slices.Clone(doc.SharedWith),
		SharedWithNames: slices.Clone(doc.SharedWithNames),
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}
