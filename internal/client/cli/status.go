package cli

import (
	"context"
	"errors"

	"github.com/BBongSu/AdvanceKeep/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	user, err := c.auth.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			c.io.Println("Status: Not logged in")
			c.io.Println()
			c.io.Println("Run 'keep login' to sign in.")
			return nil
		}
		return err
	}

	c.io.Println("Status: Logged in")
	c.io.Printf("User:   %s <%s>\n", user.DisplayName(), user.Email)

	// The engine restores the pending queue from the local cache, so
	// the count is available without touching the network.
	svc, _, err := c.openNotes(ctx, false)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	if pending := svc.PendingCount(); pending > 0 {
		c.io.Println()
		c.io.Printf("Pending sync: %d change(s) waiting to reach the server\n", pending)
	}

	return nil
}
