package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BBongSu/AdvanceKeep/internal/models"
	"github.com/BBongSu/AdvanceKeep/internal/server/storage"
)

// SaveLabel creates or replaces the label and advances the owner's
// label cursor
func (s *Storage) SaveLabel(ctx context.Context, label *models.Label) (*models.Label, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT OR REPLACE INTO labels (id, user_id, name, created_at)
		VALUES (?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query,
		label.ID, label.UserID, label.Name, label.CreatedAt.Unix()); err != nil {
		return nil, fmt.Errorf("failed to insert label: %w", err)
	}

	if err := bumpCursor(ctx, tx, labelsKey(label.UserID)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit label: %w", err)
	}

	return label.Clone(), nil
}

// GetLabel retrieves a single label by ID
func (s *Storage) GetLabel(ctx context.Context, id string) (*models.Label, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM labels
		WHERE id = ?
	`

	label := &models.Label{}
	var createdAt int64

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&label.ID,
		&label.UserID,
		&label.Name,
		&createdAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrLabelNotFound
		}
		return nil, fmt.Errorf("failed to get label: %w", err)
	}

	label.CreatedAt = unixToTime(createdAt)

	return label, nil
}

// DeleteLabel removes the label
func (s *Storage) DeleteLabel(ctx context.Context, id string) error {
	previous, err := s.GetLabel(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
	}

	if err := bumpCursor(ctx, tx, labelsKey(previous.UserID)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit label delete: %w", err)
	}

	return nil
}

// ListLabels retrieves all labels of a user, oldest first
func (s *Storage) ListLabels(ctx context.Context, userID string) ([]*models.Label, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM labels
		WHERE user_id = ?
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query labels: %w", err)
	}
	defer rows.Close()

	labels := []*models.Label{}
	for rows.Next() {
		label := &models.Label{}
		var createdAt int64
		if err := rows.Scan(&label.ID, &label.UserID, &label.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		label.CreatedAt = unixToTime(createdAt)
		labels = append(labels, label)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate labels: %w", err)
	}

	return labels, nil
}

// LabelsCursor returns the change cursor of the user's labels
func (s *Storage) LabelsCursor(ctx context.Context, userID string) (int64, error) {
	return s.readCursor(ctx, labelsKey(userID))
}
