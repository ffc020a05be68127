package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/BBongSu/AdvanceKeep/internal/client/auth"
)

const labelUsage = "usage: keep label <list|add <name>|rename <id> <name>|remove <id>>"

func (c *Cli) runLabel(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", labelUsage)
	}

	user, err := c.auth.Restore(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			return fmt.Errorf("not logged in. Run 'keep login' first")
		}
		return err
	}

	switch args[0] {
	case "list":
		svc := c.openLabels(ctx, user, true)
		defer func() { _ = svc.Close() }()

		all := svc.Labels()
		if len(all) == 0 {
			c.io.Println("No labels")
			return nil
		}
		for _, label := range all {
			c.io.Printf("%s  %s\n", label.ID, label.Name)
		}
		return nil

	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: keep label add <name>")
		}
		svc := c.openLabels(ctx, user, true)
		defer func() { _ = svc.Close() }()

		label, err := svc.AddLabel(ctx, args[1])
		if err != nil {
			return err
		}
		if label == nil {
			c.io.Println("Label name is empty, nothing created")
			return nil
		}
		c.io.Printf("Added label %s\n", label.ID)
		return nil

	case "rename":
		if len(args) < 3 {
			return fmt.Errorf("usage: keep label rename <id> <name>")
		}
		svc := c.openLabels(ctx, user, true)
		defer func() { _ = svc.Close() }()

		if err := svc.EditLabel(ctx, args[1], args[2]); err != nil {
			return err
		}
		c.io.Printf("Renamed label %s\n", args[1])
		return nil

	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: keep label remove <id>")
		}
		svc := c.openLabels(ctx, user, true)
		defer func() { _ = svc.Close() }()

		if err := svc.RemoveLabel(ctx, args[1]); err != nil {
			return err
		}
		c.io.Printf("Removed label %s\n", args[1])
		return nil

	default:
		return fmt.Errorf("%s", labelUsage)
	}
}
