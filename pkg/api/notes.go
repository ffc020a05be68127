package api

import "time"

// Note is the note document in its wire shape.
// ownerId is authoritative; userId is the owner field written by older
// releases and is kept for records that predate the rename.
type Note struct {
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	ID              string          `json:"id"`
	OwnerID         string          `json:"ownerId"`
	LegacyUserID    string          `json:"userId,omitempty"`
	Title           string          `json:"title,omitempty"`
	Text            string          `json:"text,omitempty"`
	Color           string          `json:"color,omitempty"`
	Type            string          `json:"type"`
	Images          []string        `json:"images,omitempty"`
	Items           []ChecklistItem `json:"items,omitempty"`
	Labels          []string        `json:"labels,omitempty"`
	SharedWith      []string        `json:"sharedWith,omitempty"`
	SharedWithNames []string        `json:"sharedWithNames,omitempty"`
	IsPinned        bool            `json:"isPinned"`
	IsArchived      bool            `json:"isArchived"`
	InTrash         bool            `json:"inTrash"`
}

// ChecklistItem is one entry of a checklist note
type ChecklistItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Label is the label document in its wire shape
type Label struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
}

// NotesResponse is the body of note list and changes endpoints.
// Seq is the server's current change cursor for the queried scope;
// a follow-up poll passes it back as ?since= to detect changes cheaply.
type NotesResponse struct {
	Notes    []Note `json:"notes"`
	Seq      int64  `json:"seq"`
	Modified bool   `json:"modified"` // false when nothing changed since ?since=
}

// LabelsResponse is the label counterpart of NotesResponse
type LabelsResponse struct {
	Labels   []Label `json:"labels"`
	Seq      int64   `json:"seq"`
	Modified bool    `json:"modified"`
}
