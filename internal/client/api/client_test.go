package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BBongSu/AdvanceKeep/internal/client/store"
	"github.com/BBongSu/AdvanceKeep/internal/models"
	"github.com/BBongSu/AdvanceKeep/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080", testLogger())

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.RegisterRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", req.Email)
		assert.Equal(t, "Alice", req.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{
			UserID:  "user-123",
			Message: "Registration successful",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	resp, err := client.Register(context.Background(), api.RegisterRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-123", resp.UserID)
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "invalid credentials"})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	resp, err := client.Login(context.Background(), api.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "server error (401): invalid credentials")
}

func TestClient_AuthorizationHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.Note{ID: "n1", OwnerID: "u1", Type: "text"})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	client.SetToken("test_token")

	_, err := client.CreateNote(context.Background(), &models.Note{ID: "n1", OwnerID: "u1"})
	require.NoError(t, err)
}

func TestClient_CreateNote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/notes", r.URL.Path)

		var doc api.Note
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		assert.Equal(t, "n1", doc.ID)
		assert.Equal(t, "Groceries", doc.Title)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(doc)
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	note, err := client.CreateNote(context.Background(), &models.Note{
		ID:      "n1",
		OwnerID: "u1",
		Title:   "Groceries",
		Type:    models.NoteTypeText,
	})

	require.NoError(t, err)
	assert.Equal(t, "n1", note.ID)
	assert.Equal(t, "Groceries", note.Title)
}

func TestClient_UpdateNote_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "note not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	_, err := client.UpdateNote(context.Background(), &models.Note{ID: "ghost"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestClient_DeleteNote_MissingIsIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/v1/notes/n1", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "note not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	assert.NoError(t, client.DeleteNote(context.Background(), "n1"))
}

func TestClient_ResolveUserByEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/lookup", r.URL.Path)
		email := r.URL.Query().Get("email")
		if email != "bob@example.com" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "user not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.User{ID: "u2", Name: "Bob", Email: email})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	user, err := client.ResolveUserByEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)
	assert.Equal(t, "Bob", user.Name)

	_, err = client.ResolveUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestClient_WatchOwned_PollsAndDelivers(t *testing.T) {
	var polls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/notes/changes", r.URL.Path)
		assert.Equal(t, "owned", r.URL.Query().Get("scope"))

		n := polls.Add(1)
		switch r.URL.Query().Get("since") {
		case "0":
			// Initial snapshot.
			_ = json.NewEncoder(w).Encode(api.NotesResponse{
				Notes:    []api.Note{{ID: "n1", OwnerID: "u1", Type: "text"}},
				Seq:      7,
				Modified: true,
			})
		case "7":
			if n < 4 {
				// Nothing changed since seq 7.
				_ = json.NewEncoder(w).Encode(api.NotesResponse{Seq: 7, Modified: false})
				return
			}
			_ = json.NewEncoder(w).Encode(api.NotesResponse{
				Notes: []api.Note{
					{ID: "n1", OwnerID: "u1", Type: "text"},
					{ID: "n2", OwnerID: "u1", Type: "text"},
				},
				Seq:      9,
				Modified: true,
			})
		default:
			_ = json.NewEncoder(w).Encode(api.NotesResponse{Seq: 9, Modified: false})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	client.pollInterval = 5 * time.Millisecond

	snapshots := make(chan []*models.Note, 16)
	unsub, err := client.WatchOwned(context.Background(), "u1", func(notes []*models.Note) {
		snapshots <- notes
	})
	require.NoError(t, err)
	defer unsub()

	first := <-snapshots
	require.Len(t, first, 1)
	assert.Equal(t, "n1", first[0].ID)

	second := <-snapshots
	require.Len(t, second, 2)

	unsub()
	unsub() // idempotent
}

func TestClient_WatchLabels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/labels/changes", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.LabelsResponse{
			Labels:   []api.Label{{ID: "l1", UserID: "u1", Name: "work"}},
			Seq:      1,
			Modified: r.URL.Query().Get("since") == "0",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	client.pollInterval = 5 * time.Millisecond

	snapshots := make(chan []*models.Label, 16)
	unsub, err := client.WatchLabels(context.Background(), "u1", func(labels []*models.Label) {
		snapshots <- labels
	})
	require.NoError(t, err)
	defer unsub()

	labels := <-snapshots
	require.Len(t, labels, 1)
	assert.Equal(t, "work", labels[0].Name)
}

func TestClient_WatchOwned_StopsOnUnsubscribe(t *testing.T) {
	var polls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		_ = json.NewEncoder(w).Encode(api.NotesResponse{Seq: 1, Modified: false})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	client.pollInterval = time.Millisecond

	unsub, err := client.WatchOwned(context.Background(), "u1", func([]*models.Note) {})
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return polls.Load() > 2 }, time.Second, time.Millisecond)
	unsub()

	settled := polls.Load()
	time.Sleep(20 * time.Millisecond)
	// One in-flight poll may still land after cancellation.
	assert.LessOrEqual(t, polls.Load(), settled+1)
}
