// Package api implements the HTTP client for the keep server. It
// satisfies the store capability interfaces the sync engine consumes,
// so the engine never sees HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/BBongSu/AdvanceKeep/internal/client/store"
	"github.com/BBongSu/AdvanceKeep/internal/models"
	"github.com/BBongSu/AdvanceKeep/pkg/api"
)

const defaultPollInterval = 3 * time.Second

// Client is the HTTP client for the keep server
type Client struct {
	httpClient   *http.Client
	baseURL      string
	logger       *slog.Logger
	pollInterval time.Duration

	mu    sync.RWMutex
	token string
}

// NewClient creates a new API client
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:      baseURL,
		logger:       logger,
		pollInterval: defaultPollInterval,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the Authorization header across redirects.
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken sets the bearer token attached to subsequent requests.
// An empty token clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates and returns a token pair with the user profile
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh exchanges a refresh token for a fresh token pair
func (c *Client) Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout revokes the current refresh token server-side
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// ResolveUserByEmail finds the directory entry behind an email.
// Returns store.ErrUserNotFound when no such account exists.
func (c *Client) ResolveUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var resp api.User
	path := "/api/v1/users/lookup?email=" + url.QueryEscape(email)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("user lookup request failed: %w", err)
	}
	return userFromAPI(resp), nil
}

// LookupUser fetches the directory entry for a user id
func (c *Client) LookupUser(ctx context.Context, id string) (*models.User, error) {
	var resp api.User
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/users/"+url.PathEscape(id), nil, &resp); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("user lookup request failed: %w", err)
	}
	return userFromAPI(resp), nil
}

// CreateNote stores a new note
func (c *Client) CreateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	var resp api.Note
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/notes", note.ToAPI(), &resp); err != nil {
		return nil, fmt.Errorf("create note request failed: %w", err)
	}
	return models.NoteFromAPI(resp), nil
}

// UpdateNote replaces a note by id
func (c *Client) UpdateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	var resp api.Note
	path := "/api/v1/notes/" + url.PathEscape(note.ID)
	if err := c.doRequest(ctx, http.MethodPut, path, note.ToAPI(), &resp); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("update note request failed: %w", err)
	}
	return models.NoteFromAPI(resp), nil
}

// DeleteNote removes a note permanently. Deleting an id the server no
// longer knows about succeeds, so retried deletes stay idempotent.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	err := c.doRequest(ctx, http.MethodDelete, "/api/v1/notes/"+url.PathEscape(id), nil, nil)
	if err != nil && !isStatus(err, http.StatusNotFound) {
		return fmt.Errorf("delete note request failed: %w", err)
	}
	return nil
}

// CreateLabel stores a new label
func (c *Client) CreateLabel(ctx context.Context, label *models.Label) (*models.Label, error) {
	var resp api.Label
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/labels", label.ToAPI(), &resp); err != nil {
		return nil, fmt.Errorf("create label request failed: %w", err)
	}
	return models.LabelFromAPI(resp), nil
}

// UpdateLabel replaces a label by id
func (c *Client) UpdateLabel(ctx context.Context, label *models.Label) (*models.Label, error) {
	var resp api.Label
	path := "/api/v1/labels/" + url.PathEscape(label.ID)
	if err := c.doRequest(ctx, http.MethodPut, path, label.ToAPI(), &resp); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("update label request failed: %w", err)
	}
	return models.LabelFromAPI(resp), nil
}

// DeleteLabel removes a label. Idempotent like DeleteNote.
func (c *Client) DeleteLabel(ctx context.Context, id string) error {
	err := c.doRequest(ctx, http.MethodDelete, "/api/v1/labels/"+url.PathEscape(id), nil, nil)
	if err != nil && !isStatus(err, http.StatusNotFound) {
		return fmt.Errorf("delete label request failed: %w", err)
	}
	return nil
}

// statusError carries the HTTP status of a non-2xx response
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.status, e.message)
}

func isStatus(err error, status int) bool {
	var se *statusError
	return errors.As(err, &se) && se.status == status
}

func userFromAPI(u api.User) *models.User {
	return &models.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return &statusError{status: resp.StatusCode, message: errResp.Message}
		}
		return &statusError{status: resp.StatusCode, message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
