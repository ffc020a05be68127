package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/BBongSu/AdvanceKeep/internal/client/store"
	"github.com/BBongSu/AdvanceKeep/internal/models"
	"github.com/BBongSu/AdvanceKeep/pkg/api"
)

// The live queries are long-poll-free: the client polls the changes
// endpoint with the last seen cursor and the server answers with
// modified=false when nothing happened, which keeps idle polls to a
// header-sized exchange. The first poll (since=0) always returns the
// full snapshot.

// WatchOwned polls the notes owned by userID
func (c *Client) WatchOwned(ctx context.Context, userID string, onChange func([]*models.Note)) (store.Unsubscribe, error) {
	return c.watchNotes(ctx, "owned", onChange)
}

// WatchSharedWith polls the notes shared with userID
func (c *Client) WatchSharedWith(ctx context.Context, userID string, onChange func([]*models.Note)) (store.Unsubscribe, error) {
	return c.watchNotes(ctx, "shared", onChange)
}

func (c *Client) watchNotes(ctx context.Context, scope string, onChange func([]*models.Note)) (store.Unsubscribe, error) {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		var since int64
		for {
			resp, err := c.fetchNoteChanges(ctx, scope, since)
			switch {
			case ctx.Err() != nil:
				return
			case err != nil:
				c.logger.Warn("note poll failed", "scope", scope, "error", err)
			case resp.Modified:
				since = resp.Seq
				notes := make([]*models.Note, 0, len(resp.Notes))
				for _, doc := range resp.Notes {
					notes = append(notes, models.NoteFromAPI(doc))
				}
				onChange(notes)
			default:
				since = resp.Seq
			}

			if !sleep(ctx, c.pollInterval) {
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(cancel) }, nil
}

// WatchLabels polls the labels owned by userID
func (c *Client) WatchLabels(ctx context.Context, userID string, onChange func([]*models.Label)) (store.Unsubscribe, error) {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		var since int64
		for {
			resp, err := c.fetchLabelChanges(ctx, since)
			switch {
			case ctx.Err() != nil:
				return
			case err != nil:
				c.logger.Warn("label poll failed", "error", err)
			case resp.Modified:
				since = resp.Seq
				labels := make([]*models.Label, 0, len(resp.Labels))
				for _, doc := range resp.Labels {
					labels = append(labels, models.LabelFromAPI(doc))
				}
				onChange(labels)
			default:
				since = resp.Seq
			}

			if !sleep(ctx, c.pollInterval) {
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(cancel) }, nil
}

func (c *Client) fetchNoteChanges(ctx context.Context, scope string, since int64) (*api.NotesResponse, error) {
	var resp api.NotesResponse
	path := fmt.Sprintf("/api/v1/notes/changes?scope=%s&since=%d", url.QueryEscape(scope), since)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) fetchLabelChanges(ctx context.Context, since int64) (*api.LabelsResponse, error) {
	var resp api.LabelsResponse
	path := fmt.Sprintf("/api/v1/labels/changes?since=%d", since)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// sleep waits for the poll interval, returning false when ctx ends
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
