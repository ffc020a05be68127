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

func testNote(id, ownerID string) *models.Note {
	now := time.Now().Truncate(time.Second)
	return &models.Note{
		ID:        id,
		OwnerID:   ownerID,
		Title:     "Groceries",
		Text:      "milk, bread",
		Type:      models.NoteTypeText,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSaveNote_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	note := testNote("n1", "u1")
	note.Items = []models.ChecklistItem{{ID: "i1", Text: "tent", Checked: true}}
	note.Labels = []string{"l1"}

	saved, err := s.SaveNote(ctx, note)
	require.NoError(t, err)
	assert.Equal(t, note.ID, saved.ID)

	got, err := s.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
	assert.Equal(t, []string{"l1"}, got.Labels)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].Checked)
}

func TestSaveNote_ReplacesDocument(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	note := testNote("n1", "u1")
	_, err := s.SaveNote(ctx, note)
	require.NoError(t, err)

	note.Title = "Groceries v2"
	note.UpdatedAt = note.UpdatedAt.Add(time.Minute)
	_, err = s.SaveNote(ctx, note)
	require.NoError(t, err)

	got, err := s.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "Groceries v2", got.Title)

	owned, err := s.ListOwned(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

func TestGetNote_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetNote(context.Background(), "n404")
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestListScopes_PartitionByShareSet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	mine := testNote("n1", "u1")
	_, err := s.SaveNote(ctx, mine)
	require.NoError(t, err)

	theirs := testNote("n2", "u2")
	theirs.SharedWith = []string{"u1"}
	_, err = s.SaveNote(ctx, theirs)
	require.NoError(t, err)

	owned, err := s.ListOwned(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "n1", owned[0].ID)

	shared, err := s.ListSharedWith(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, "n2", shared[0].ID)
}

func TestCursors_AdvanceOnEveryWrite(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	before, err := s.OwnedCursor(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, before)

	_, err = s.SaveNote(ctx, testNote("n1", "u1"))
	require.NoError(t, err)

	after, err := s.OwnedCursor(ctx, "u1")
	require.NoError(t, err)
	assert.Greater(t, after, before)

	require.NoError(t, s.DeleteNote(ctx, "n1"))

	final, err := s.OwnedCursor(ctx, "u1")
	require.NoError(t, err)
	assert.Greater(t, final, after)
}

func TestCursors_ShareTransitionsTouchBothSides(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	note := testNote("n1", "u1")
	note.SharedWith = []string{"u2"}
	_, err := s.SaveNote(ctx, note)
	require.NoError(t, err)

	sharedBefore, err := s.SharedCursor(ctx, "u2")
	require.NoError(t, err)
	assert.NotZero(t, sharedBefore)

	// Unsharing must still move u2's cursor so their poller drops the note.
	note.SharedWith = nil
	_, err = s.SaveNote(ctx, note)
	require.NoError(t, err)

	sharedAfter, err := s.SharedCursor(ctx, "u2")
	require.NoError(t, err)
	assert.Greater(t, sharedAfter, sharedBefore)

	shared, err := s.ListSharedWith(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, shared)
}

func TestDeleteNote_NotifiesSharedUsers(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	note := testNote("n1", "u1")
	note.SharedWith = []string{"u2"}
	_, err := s.SaveNote(ctx, note)
	require.NoError(t, err)

	before, err := s.SharedCursor(ctx, "u2")
	require.NoError(t, err)

	require.NoError(t, s.DeleteNote(ctx, "n1"))

	after, err := s.SharedCursor(ctx, "u2")
	require.NoError(t, err)
	assert.Greater(t, after, before)

	assert.ErrorIs(t, s.DeleteNote(ctx, "n1"), storage.ErrNoteNotFound)
}
