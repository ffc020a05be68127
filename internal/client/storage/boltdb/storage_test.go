package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBongSu/AdvanceKeep/internal/client/storage"
	"github.com/BBongSu/AdvanceKeep/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "keep.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSession_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	session := &storage.SessionData{
		UserID:       "u1",
		Name:         "Alice",
		Email:        "alice@example.com",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}

	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	loggedIn, err := s.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)
}

func TestSession_NotFound(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	loggedIn, err := s.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)
}

func TestSession_ExpiredIsNotLoggedIn(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &storage.SessionData{
		UserID:    "u1",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}))

	loggedIn, err := s.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)
}

func TestSession_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &storage.SessionData{UserID: "u1"}))
	require.NoError(t, s.DeleteSession(ctx))

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Deleting twice reports the missing session.
	assert.ErrorIs(t, s.DeleteSession(ctx), storage.ErrSessionNotFound)
}

func TestCache_NotesRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	notes := []*models.Note{
		{
			ID:         "n1",
			OwnerID:    "u1",
			Title:      "Groceries",
			Text:       "milk",
			Type:       models.NoteTypeText,
			SharedWith: []string{"u2"},
			CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:      "n2",
			OwnerID: "u1",
			Type:    models.NoteTypeChecklist,
			Items:   []models.ChecklistItem{{ID: "i1", Text: "bread", Checked: true}},
		},
	}

	require.NoError(t, s.SaveNotes(ctx, "u1", notes))

	got, err := s.LoadNotes(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Groceries", got[0].Title)
	assert.Equal(t, []string{"u2"}, got[0].SharedWith)
	assert.True(t, got[1].Items[0].Checked)

	// Snapshots are keyed per user.
	other, err := s.LoadNotes(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestCache_SaveReplacesSnapshot(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveNotes(ctx, "u1", []*models.Note{{ID: "n1"}, {ID: "n2"}}))
	require.NoError(t, s.SaveNotes(ctx, "u1", []*models.Note{{ID: "n2"}}))

	got, err := s.LoadNotes(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "n2", got[0].ID)
}

func TestCache_LabelsRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	labels := []*models.Label{
		{ID: "l1", UserID: "u1", Name: "work", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	require.NoError(t, s.SaveLabels(ctx, "u1", labels))

	got, err := s.LoadLabels(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "work", got[0].Name)
}

func TestCache_PendingRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	actions := []*models.PendingAction{
		{
			ID:       "pa1",
			Kind:     models.ActionCreate,
			NoteID:   "n1",
			Note:     &models.Note{ID: "n1", Title: "queued"},
			Attempts: 3,
		},
		{
			ID:     "pa2",
			Kind:   models.ActionDelete,
			NoteID: "n2",
		},
	}

	require.NoError(t, s.SavePending(ctx, "u1", actions))

	got, err := s.LoadPending(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.ActionCreate, got[0].Kind)
	assert.Equal(t, 3, got[0].Attempts)
	assert.Equal(t, "queued", got[0].Note.Title)
	assert.Nil(t, got[1].Note)
}

func TestCache_EmptyLoad(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	got, err := s.LoadPending(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
