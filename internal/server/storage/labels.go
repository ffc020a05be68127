package storage

import (
	"context"

	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// LabelStorage defines interface for label persistence.
// Labels are single-owner; every write advances the owner's label
// change cursor.
type LabelStorage interface {
	// SaveLabel creates or replaces the label
	SaveLabel(ctx context.Context, label *models.Label) (*models.Label, error)

	// GetLabel retrieves a single label by ID
	// Returns ErrLabelNotFound if label doesn't exist
	GetLabel(ctx context.Context, id string) (*models.Label, error)

	// DeleteLabel removes the label
	// Returns ErrLabelNotFound if label doesn't exist
	DeleteLabel(ctx context.Context, id string) error

	// ListLabels retrieves all labels of a user, oldest first
	// Returns empty slice if no labels found
	ListLabels(ctx context.Context, userID string) ([]*models.Label, error)

	// LabelsCursor returns the change cursor of the user's labels
	LabelsCursor(ctx context.Context, userID string) (int64, error)
}
