package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runShare(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: keep share <note-id> <email>")
	}
	id, email := args[0], args[1]

	svc, _, err := c.openNotes(ctx, true)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	note, err := svc.ShareWithEmail(ctx, id, email)
	if err != nil {
		return err
	}

	c.io.Printf("Note %s is now shared with %d user(s)\n", note.ID, len(note.SharedWith))
	return nil
}

func (c *Cli) runUnshare(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: keep unshare <note-id> <email>")
	}
	id, email := args[0], args[1]

	svc, _, err := c.openNotes(ctx, true)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	if _, err := svc.UnshareWithEmail(ctx, id, email); err != nil {
		return err
	}

	c.io.Printf("Revoked %s's access to note %s\n", email, id)
	return nil
}
