// Package cli implements the command surface of the keep client.
// Commands are thin: they restore the session, stand up the sync
// services and translate between terminal I/O and service calls.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BBongSu/AdvanceKeep/internal/client/auth"
	"github.com/BBongSu/AdvanceKeep/internal/client/iocli"
	"github.com/BBongSu/AdvanceKeep/internal/client/labels"
	"github.com/BBongSu/AdvanceKeep/internal/client/notes"
	"github.com/BBongSu/AdvanceKeep/internal/client/store"
	"github.com/BBongSu/AdvanceKeep/internal/models"
)

//go:generate moq -out auth_mock.go . AuthService

// AuthService is the slice of the auth layer the commands consume
type AuthService interface {
	Register(ctx context.Context, email, name, password string) error
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// syncWait bounds how long a one-shot command waits for the first
// server snapshots before rendering whatever it has (possibly the
// cached copy, when the server is unreachable).
const syncWait = 3 * time.Second

type Cli struct {
	io         iocli.IO
	auth       AuthService
	noteStore  store.NoteStore
	labelStore store.LabelStore
	identity   store.Identity
	cache      store.SnapshotCache
	logger     *slog.Logger
}

func New(
	io iocli.IO,
	authService AuthService,
	noteStore store.NoteStore,
	labelStore store.LabelStore,
	identity store.Identity,
	cache store.SnapshotCache,
	logger *slog.Logger,
) *Cli {
	return &Cli{
		io:         io,
		auth:       authService,
		noteStore:  noteStore,
		labelStore: labelStore,
		identity:   identity,
		cache:      cache,
		logger:     logger,
	}
}

// openNotes restores the session and builds a note engine for it.
// When wait is true it subscribes and blocks until both live queries
// delivered their first snapshot (or the sync window runs out).
func (c *Cli) openNotes(ctx context.Context, wait bool) (notes.Service, *models.User, error) {
	user, err := c.auth.Restore(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			return nil, nil, fmt.Errorf("not logged in. Run 'keep login' first")
		}
		return nil, nil, err
	}

	svc := notes.NewService(c.noteStore, c.identity, c.cache, user, c.logger)

	if wait {
		emissions := make(chan struct{}, 8)
		unsub, err := svc.Subscribe(ctx, func([]*models.Note) {
			select {
			case emissions <- struct{}{}:
			default:
			}
		})
		if err != nil {
			c.logger.Warn("subscription failed, rendering cached snapshot", "error", err)
			return svc, user, nil
		}
		defer unsub()

		// Both streams emit once on connect; extra emissions are fine.
		awaitEmissions(ctx, emissions, 2)
	}

	return svc, user, nil
}

// openLabels builds the label mirror for the session, waiting for its
// first snapshot the same way openNotes does.
func (c *Cli) openLabels(ctx context.Context, user *models.User, wait bool) labels.Service {
	svc := labels.NewService(c.labelStore, c.cache, user, c.logger)

	if wait {
		emissions := make(chan struct{}, 8)
		unsub, err := svc.Subscribe(ctx, func([]*models.Label) {
			select {
			case emissions <- struct{}{}:
			default:
			}
		})
		if err != nil {
			c.logger.Warn("label subscription failed, rendering cached snapshot", "error", err)
			return svc
		}
		defer unsub()

		awaitEmissions(ctx, emissions, 1)
	}

	return svc
}

func awaitEmissions(ctx context.Context, emissions <-chan struct{}, want int) {
	deadline := time.NewTimer(syncWait)
	defer deadline.Stop()
	for i := 0; i < want; i++ {
		select {
		case <-emissions:
		case <-deadline.C:
			return
		case <-ctx.Done():
			return
		}
	}
}

func PrintUsage(io iocli.IO) {
	io.Println("AdvanceKeep Client")
	io.Println()
	io.Println("Usage:")
	io.Println("  keep [OPTIONS] COMMAND")
	io.Println()
	io.Println("Options:")
	io.Println("  --version          Show version information")
	io.Println("  --server URL       Server URL (default: http://localhost:8080)")
	io.Println("  --db PATH          Path to local database (default: keep-client.db)")
	io.Println()
	io.Println("Commands:")
	io.Println("  register                      Register new account")
	io.Println("  login                         Login to server")
	io.Println("  logout                        Logout from server")
	io.Println("  status                        Show session status")
	io.Println("  add [flags]                   Add a note")
	io.Println("  list [flags]                  List notes")
	io.Println("  get <id>                      Show full note details")
	io.Println("  edit <id> [flags]             Edit a note")
	io.Println("  pin <id>                      Toggle the pin flag")
	io.Println("  archive <id>                  Archive a note")
	io.Println("  unarchive <id>                Bring a note back from the archive")
	io.Println("  trash <id>                    Move a note to trash")
	io.Println("  restore <id>                  Restore a note from trash")
	io.Println("  delete <id>                   Delete a note permanently")
	io.Println("  share <id> <email>            Share a note with a user")
	io.Println("  unshare <id> <email>          Revoke a user's access")
	io.Println("  label <list|add|rename|remove>  Manage labels")
	io.Println()
	io.Println("Examples:")
	io.Println("  keep add --title 'Groceries' --text 'milk, bread'")
	io.Println("  keep add --title 'Packing' --item tent --item stove")
	io.Println("  keep list --search milk --scope active --order latest")
	io.Println("  keep share b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 friend@example.com")
}
