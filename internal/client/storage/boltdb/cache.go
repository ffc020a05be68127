package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// The snapshot cache stores one JSON document per user per concern.
// A missing key is an empty snapshot, not an error: first run and
// post-logout cold starts look the same.

// SaveNotes persists the image-stripped note snapshot for a user
func (s *Storage) SaveNotes(ctx context.Context, userID string, notes []*models.Note) error {
	return s.putJSON(bucketNotes, userID, notes)
}

// LoadNotes returns the cached note snapshot for a user
func (s *Storage) LoadNotes(ctx context.Context, userID string) ([]*models.Note, error) {
	var notes []*models.Note
	if err := s.getJSON(bucketNotes, userID, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// SaveLabels persists the label snapshot for a user
func (s *Storage) SaveLabels(ctx context.Context, userID string, labels []*models.Label) error {
	return s.putJSON(bucketLabels, userID, labels)
}

// LoadLabels returns the cached label snapshot for a user
func (s *Storage) LoadLabels(ctx context.Context, userID string) ([]*models.Label, error) {
	var labels []*models.Label
	if err := s.getJSON(bucketLabels, userID, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// SavePending persists the retry queue for a user
func (s *Storage) SavePending(ctx context.Context, userID string, actions []*models.PendingAction) error {
	return s.putJSON(bucketPending, userID, actions)
}

// LoadPending returns the persisted retry queue for a user
func (s *Storage) LoadPending(ctx context.Context, userID string) ([]*models.PendingAction, error) {
	var actions []*models.PendingAction
	if err := s.getJSON(bucketPending, userID, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

func (s *Storage) putJSON(bucketName []byte, userID string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s snapshot: %w", bucketName, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}
		if err := bucket.Put([]byte(userID), data); err != nil {
			return fmt.Errorf("failed to save %s snapshot: %w", bucketName, err)
		}
		return nil
	})
}

func (s *Storage) getJSON(bucketName []byte, userID string, out any) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}

		data := bucket.Get([]byte(userID))
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to unmarshal %s snapshot: %w", bucketName, err)
		}
		return nil
	})
}
