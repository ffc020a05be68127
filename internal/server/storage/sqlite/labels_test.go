package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBongSu/AdvanceKeep/internal/models"
	"github.com/BBongSu/AdvanceKeep/internal/server/storage"
)

func testLabel(id, userID, name string, createdAt time.Time) *models.Label {
	return &models.Label{
		ID:        id,
		UserID:    userID,
		Name:      name,
		CreatedAt: createdAt,
	}
}

func TestSaveLabel_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	label := testLabel("l1", "u1", "work", time.Now().Truncate(time.Second))
	_, err := s.SaveLabel(ctx, label)
	require.NoError(t, err)

	got, err := s.GetLabel(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, "work", got.Name)
	assert.Equal(t, "u1", got.UserID)
}

func TestListLabels_OldestFirstPerUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	base := time.Now().Truncate(time.Second)

	_, err := s.SaveLabel(ctx, testLabel("l2", "u1", "newer", base.Add(time.Hour)))
	require.NoError(t, err)
	_, err = s.SaveLabel(ctx, testLabel("l1", "u1", "older", base))
	require.NoError(t, err)
	_, err = s.SaveLabel(ctx, testLabel("l3", "u2", "other", base))
	require.NoError(t, err)

	labels, err := s.ListLabels(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, "older", labels[0].Name)
	assert.Equal(t, "newer", labels[1].Name)
}

func TestDeleteLabel_AdvancesCursor(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.SaveLabel(ctx, testLabel("l1", "u1", "work", time.Now()))
	require.NoError(t, err)

	before, err := s.LabelsCursor(ctx, "u1")
	require.NoError(t, err)
	assert.NotZero(t, before)

	require.NoError(t, s.DeleteLabel(ctx, "l1"))

	after, err := s.LabelsCursor(ctx, "u1")
	require.NoError(t, err)
	assert.Greater(t, after, before)

	assert.ErrorIs(t, s.DeleteLabel(ctx, "l1"), storage.ErrLabelNotFound)
	_, err = s.GetLabel(ctx, "l1")
	assert.ErrorIs(t, err, storage.ErrLabelNotFound)
}
