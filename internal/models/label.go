package models

import (
	"time"

	"github.com/BBongSu/AdvanceKeep/pkg/api"
)

// Label is a user-owned tag for organizing notes. Labels are never
// shared; note.Labels references them by id and dangling references
// are filtered out at render time rather than cascade-cleaned.
type Label struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
}

// Clone returns an independent copy
func (l *Label) Clone() *Label {
	out := *l
	return &out
}

// ToAPI converts the label to its wire shape
func (l *Label) ToAPI() api.Label {
	return api.Label{
		ID:        l.ID,
		UserID:    l.UserID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
	}
}

// LabelFromAPI converts a wire document into the domain type
func LabelFromAPI(doc api.Label) *Label {
	return &Label{
		ID:        doc.ID,
		UserID:    doc.UserID,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
	}
}
