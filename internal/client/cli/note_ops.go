package cli

import (
	"context"
	"fmt"
)

// runFlagOp handles the single-flag lifecycle commands
func (c *Cli) runFlagOp(ctx context.Context, args []string, op string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing note id. Usage: keep %s <id>", op)
	}
	id := args[0]

	svc, _, err := c.openNotes(ctx, true)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	switch op {
	case "pin":
		err = svc.TogglePin(ctx, id)
	case "archive":
		err = svc.ArchiveNote(ctx, id)
	case "unarchive":
		err = svc.UnarchiveNote(ctx, id)
	case "trash":
		err = svc.MoveToTrash(ctx, id)
	case "restore":
		err = svc.RestoreNote(ctx, id)
	}
	if err != nil {
		return err
	}

	c.io.Printf("OK: %s %s\n", op, id)
	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing note id. Usage: keep delete <id>")
	}
	id := args[0]

	answer, err := c.io.ReadInput(fmt.Sprintf("Permanently delete note %s? [y/N]: ", id))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if answer != "y" && answer != "Y" {
		c.io.Println("Cancelled.")
		return nil
	}

	svc, _, err := c.openNotes(ctx, true)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	if err := svc.DeleteForever(ctx, id); err != nil {
		return err
	}

	c.io.Printf("Deleted note %s\n", id)
	return nil
}
