package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBongSu/AdvanceKeep/internal/models"
)

func note(id string, opts ...func(*models.Note)) *models.Note {
	n := &models.Note{ID: id, Type: models.NoteTypeText}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	notes := []*models.Note{
		note("n1", func(n *models.Note) { n.Text = "pending task" }),
		note("n2", func(n *models.Note) { n.Title = "Shopping" }),
		note("n3", func(n *models.Note) {
			n.Type = models.NoteTypeChecklist
			n.Items = []models.ChecklistItem{{ID: "i1", Text: "buy a PENCIL"}}
		}),
	}

	got := Search(notes, "PEN")

	require.Len(t, got, 2)
	assert.Equal(t, "n1", got[0].ID)
	assert.Equal(t, "n3", got[1].ID)
}

func TestSearch_EmptyQueryIsIdentity(t *testing.T) {
	notes := []*models.Note{note("n1"), note("n2")}

	assert.Equal(t, notes, Search(notes, ""))
	assert.Equal(t, notes, Search(notes, "   "))
}

func TestInScope_PartitionComplete(t *testing.T) {
	// Every note lands in exactly one scope; trashed+archived goes to
	// trash only.
	notes := []*models.Note{
		note("active"),
		note("archived", func(n *models.Note) { n.IsArchived = true }),
		note("trashed", func(n *models.Note) { n.InTrash = true }),
		note("both", func(n *models.Note) { n.IsArchived = true; n.InTrash = true }),
	}
	scopes := []Scope{ScopeActive, ScopeArchive, ScopeTrash}

	for _, n := range notes {
		count := 0
		for _, s := range scopes {
			if InScope(n, s) {
				count++
			}
		}
		assert.Equal(t, 1, count, "note %s", n.ID)
	}

	assert.True(t, InScope(notes[3], ScopeTrash))
	assert.False(t, InScope(notes[3], ScopeArchive))
}

func TestFilterScope_ByLabel(t *testing.T) {
	notes := []*models.Note{
		note("n1", func(n *models.Note) { n.Labels = []string{"l1"} }),
		note("n2", func(n *models.Note) { n.Labels = []string{"l2"} }),
		note("n3", func(n *models.Note) { n.Labels = []string{"l1"}; n.InTrash = true }),
	}

	got := FilterScope(notes, ScopeActive, "l1")

	require.Len(t, got, 1)
	assert.Equal(t, "n1", got[0].ID)
}

func TestSortByCreated_StableAndDirectional(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	notes := []*models.Note{
		note("a", func(n *models.Note) { n.CreatedAt = base }),
		note("b", func(n *models.Note) { n.CreatedAt = base.Add(time.Hour) }),
		note("tie1", func(n *models.Note) { n.CreatedAt = base.Add(2 * time.Hour) }),
		note("tie2", func(n *models.Note) { n.CreatedAt = base.Add(2 * time.Hour) }),
	}

	latest := SortByCreated(notes, SortLatest)
	assert.Equal(t, []string{"tie1", "tie2", "b", "a"}, ids(latest))

	oldest := SortByCreated(notes, SortOldest)
	assert.Equal(t, []string{"a", "b", "tie1", "tie2"}, ids(oldest))

	// Input order untouched.
	assert.Equal(t, []string{"a", "b", "tie1", "tie2"}, ids(notes))
}

func TestApply_PinnedFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	notes := []*models.Note{
		note("old-pinned", func(n *models.Note) { n.IsPinned = true; n.CreatedAt = base }),
		note("new", func(n *models.Note) { n.CreatedAt = base.Add(2 * time.Hour) }),
		note("new-pinned", func(n *models.Note) { n.IsPinned = true; n.CreatedAt = base.Add(time.Hour) }),
	}

	got := Apply(notes, Query{Scope: ScopeActive, Order: SortLatest})

	assert.Equal(t, []string{"new-pinned", "old-pinned", "new"}, ids(got))
}

func TestResolveLabels_DropsDangling(t *testing.T) {
	labels := []*models.Label{
		{ID: "l1", Name: "work"},
		{ID: "l2", Name: "home"},
	}
	n := note("n1", func(n *models.Note) { n.Labels = []string{"l2", "deleted", "l1"} })

	resolved := ResolveLabels(n, labels)

	require.Len(t, resolved, 2)
	assert.Equal(t, "home", resolved[0].Name)
	assert.Equal(t, "work", resolved[1].Name)
}

func ids(notes []*models.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}
