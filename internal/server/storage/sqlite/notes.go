package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BBongSu/AdvanceKeep/internal/models"
	"github.com/BBongSu/AdvanceKeep/internal/server/storage"
)

// SaveNote creates or replaces the note document wholesale.
// The write advances the owner's owned cursor and the shared cursor of
// every user in the previous and new share sets, so polling clients on
// both sides of a share change see the transition.
func (s *Storage) SaveNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	previous, err := s.GetNote(ctx, note.ID)
	if err != nil && !errors.Is(err, storage.ErrNoteNotFound) {
		return nil, fmt.Errorf("failed to check existing note: %w", err)
	}

	document, err := json.Marshal(note)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal note: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT OR REPLACE INTO notes (id, owner_id, updated_at, document)
		VALUES (?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query,
		note.ID, note.Owner(), note.UpdatedAt.Unix(), string(document)); err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM note_shares WHERE note_id = ?`, note.ID); err != nil {
		return nil, fmt.Errorf("failed to clear note shares: %w", err)
	}
	for _, userID := range note.SharedWith {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO note_shares (note_id, user_id) VALUES (?, ?)`,
			note.ID, userID); err != nil {
			return nil, fmt.Errorf("failed to insert note share: %w", err)
		}
	}

	if err := s.bumpNoteCursors(ctx, tx, previous, note); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit note: %w", err)
	}

	return note.Clone(), nil
}

// GetNote retrieves a single note by ID
func (s *Storage) GetNote(ctx context.Context, id string) (*models.Note, error) {
	var document string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM notes WHERE id = ?`, id).Scan(&document)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return decodeNote(document)
}

// DeleteNote removes the note and its share relations
func (s *Storage) DeleteNote(ctx context.Context, id string) error {
	previous, err := s.GetNote(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if err := s.bumpNoteCursors(ctx, tx, previous, nil); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit note delete: %w", err)
	}

	return nil
}

// ListOwned retrieves all notes owned by a user, newest first
func (s *Storage) ListOwned(ctx context.Context, userID string) ([]*models.Note, error) {
	query := `
		SELECT document FROM notes
		WHERE owner_id = ?
		ORDER BY updated_at DESC, id
	`
	return s.queryNotes(ctx, query, userID)
}

// ListSharedWith retrieves all notes shared with a user, newest first
func (s *Storage) ListSharedWith(ctx context.Context, userID string) ([]*models.Note, error) {
	query := `
		SELECT n.document FROM notes n
		JOIN note_shares ns ON ns.note_id = n.id
		WHERE ns.user_id = ?
		ORDER BY n.updated_at DESC, n.id
	`
	return s.queryNotes(ctx, query, userID)
}

// OwnedCursor returns the change cursor of the user's owned scope
func (s *Storage) OwnedCursor(ctx context.Context, userID string) (int64, error) {
	return s.readCursor(ctx, ownedKey(userID))
}

// SharedCursor returns the change cursor of the user's shared scope
func (s *Storage) SharedCursor(ctx context.Context, userID string) (int64, error) {
	return s.readCursor(ctx, sharedKey(userID))
}

func (s *Storage) queryNotes(ctx context.Context, query string, args ...any) ([]*models.Note, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes := []*models.Note{}
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		note, err := decodeNote(document)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// bumpNoteCursors advances every scope cursor a write touches.
// previous and next may each be nil (create and delete respectively).
func (s *Storage) bumpNoteCursors(ctx context.Context, tx *sql.Tx, previous, next *models.Note) error {
	touched := map[string]struct{}{}

	for _, note := range []*models.Note{previous, next} {
		if note == nil {
			continue
		}
		touched[ownedKey(note.Owner())] = struct{}{}
		for _, userID := range note.SharedWith {
			touched[sharedKey(userID)] = struct{}{}
		}
	}

	for key := range touched {
		if err := bumpCursor(ctx, tx, key); err != nil {
			return err
		}
	}
	return nil
}

func decodeNote(document string) (*models.Note, error) {
	note := &models.Note{}
	if err := json.Unmarshal([]byte(document), note); err != nil {
		return nil, fmt.Errorf("failed to unmarshal note: %w", err)
	}
	return note, nil
}
