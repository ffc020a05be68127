package notes

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBongSu/AdvanceKeep/internal/models"
)

func noteIDs(notes []*models.Note) []string {
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestMergeStreams_DeduplicatesByID(t *testing.T) {
	owned := []*models.Note{
		{ID: "n1", OwnerID: "u1"},
		{ID: "n2", OwnerID: "u1", Title: "owner copy"},
	}
	shared := []*models.Note{
		{ID: "n2", OwnerID: "u1", Title: "shared copy"},
		{ID: "n3", OwnerID: "u9"},
	}

	merged := mergeStreams(owned, shared)

	assert.Equal(t, []string{"n1", "n2", "n3"}, noteIDs(merged))
	// First occurrence wins, so the owner stream's copy survives.
	assert.Equal(t, "owner copy", merged[1].Title)
}

func TestMergeStreams_ClonesInputs(t *testing.T) {
	owned := []*models.Note{{ID: "n1", OwnerID: "u1", Labels: []string{"l1"}}}

	merged := mergeStreams(owned, nil)
	merged[0].Labels[0] = "mutated"

	assert.Equal(t, "l1", owned[0].Labels[0])
}

func TestOverlayPending(t *testing.T) {
	server := func() []*models.Note {
		return []*models.Note{
			{ID: "n1", Title: "server n1"},
			{ID: "n2", Title: "server n2"},
		}
	}

	t.Run("queued create is restored", func(t *testing.T) {
		pending := []*models.PendingAction{{
			Kind: models.ActionCreate, NoteID: "n3",
			Note: &models.Note{ID: "n3", Title: "local only"},
		}}
		got := overlayPending(server(), pending)
		assert.Equal(t, []string{"n3", "n1", "n2"}, noteIDs(got))
	})

	t.Run("queued update overlays the server copy", func(t *testing.T) {
		pending := []*models.PendingAction{{
			Kind: models.ActionUpdate, NoteID: "n2",
			Note: &models.Note{ID: "n2", Title: "local edit"},
		}}
		got := overlayPending(server(), pending)
		require.Len(t, got, 2)
		assert.Equal(t, "local edit", got[1].Title)
	})

	t.Run("queued delete hides the note", func(t *testing.T) {
		pending := []*models.PendingAction{{
			Kind: models.ActionDelete, NoteID: "n1",
			Note: &models.Note{ID: "n1"},
		}}
		got := overlayPending(server(), pending)
		assert.Equal(t, []string{"n2"}, noteIDs(got))
	})

	t.Run("empty queue is identity", func(t *testing.T) {
		got := overlayPending(server(), nil)
		assert.Equal(t, []string{"n1", "n2"}, noteIDs(got))
	})
}

func TestRemerge_ThroughSubscription(t *testing.T) {
	f := newFixture()
	s := newTestEngine(t, f, testUser)

	var notified [][]*models.Note
	var mu sync.Mutex
	_, err := s.Subscribe(context.Background(), func(notes []*models.Note) {
		mu.Lock()
		notified = append(notified, notes)
		mu.Unlock()
	})
	require.NoError(t, err)

	f.emitOwned([]*models.Note{
		{ID: "n1", OwnerID: "u1"},
		{ID: "n2", OwnerID: "u1"},
	})
	f.emitShared([]*models.Note{
		{ID: "n2", OwnerID: "u1"},
		{ID: "n3", OwnerID: "u9", SharedWith: []string{"u1"}},
	})

	assert.Equal(t, []string{"n1", "n2", "n3"}, noteIDs(s.Notes()))

	mu.Lock()
	assert.Len(t, notified, 2)
	mu.Unlock()
}

func TestRemerge_KeepsUnconfirmedPendingVisible(t *testing.T) {
	f := newFixture()
	f.noteStore.CreateNoteFunc = func(ctx context.Context, note *models.Note) (*models.Note, error) {
		return nil, errors.New("connection refused")
	}
	s := newTestEngine(t, f, testUser)

	_, err := s.Subscribe(context.Background(), func([]*models.Note) {})
	require.NoError(t, err)

	note, err := s.AddNote(context.Background(), Draft{Title: "offline"})
	require.NoError(t, err)
	s.inflight.Wait()
	require.Equal(t, 1, s.PendingCount())

	// A server snapshot that does not carry the unconfirmed note must
	// not make it disappear.
	f.emitOwned(nil)

	require.Len(t, s.Notes(), 1)
	assert.Equal(t, note.ID, s.Notes()[0].ID)
}

func TestAnnotate_ResolvesDisplayNames(t *testing.T) {
	f := newFixture()
	f.identity.LookupUserFunc = func(ctx context.Context, id string) (*models.User, error) {
		if id == "u9" {
			return &models.User{ID: "u9", Name: "Dana"}, nil
		}
		return nil, errors.New("lookup failed")
	}
	s := newTestEngine(t, f, testUser)

	_, err := s.Subscribe(context.Background(), func([]*models.Note) {})
	require.NoError(t, err)

	f.emitOwned([]*models.Note{
		{ID: "n1", OwnerID: "u1", SharedWith: []string{"u9", "u404"}},
	})
	f.emitShared([]*models.Note{
		{ID: "n2", OwnerID: "u9", SharedWith: []string{"u1"}},
	})

	notes := s.Notes()
	require.Len(t, notes, 2)

	// Own notes use the session identity, no lookup round-trip.
	assert.Equal(t, "Alice", notes[0].OwnerName)
	assert.Equal(t, []string{"Dana", placeholderName}, notes[0].SharedWithNames)

	assert.Equal(t, "Dana", notes[1].OwnerName)
	assert.Equal(t, []string{"Alice"}, notes[1].SharedWithNames)
}

func TestAnnotate_CachesLookups(t *testing.T) {
	f := newFixture()
	s := newTestEngine(t, f, testUser)

	_, err := s.Subscribe(context.Background(), func([]*models.Note) {})
	require.NoError(t, err)

	snap := []*models.Note{{ID: "n1", OwnerID: "u9"}}
	f.emitOwned(snap)
	f.emitOwned(snap)
	f.emitOwned(snap)

	assert.Len(t, f.identity.LookupUserCalls(), 1)
	assert.Equal(t, "user-u9", s.Notes()[0].OwnerName)
}
