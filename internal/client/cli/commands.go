package cli

import (
	"context"
	"fmt"
)

// Run dispatches a command. Errors come back to the caller so main
// owns the exit code.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "pin":
		return c.runFlagOp(ctx, args, "pin")
	case "archive":
		return c.runFlagOp(ctx, args, "archive")
	case "unarchive":
		return c.runFlagOp(ctx, args, "unarchive")
	case "trash":
		return c.runFlagOp(ctx, args, "trash")
	case "restore":
		return c.runFlagOp(ctx, args, "restore")
	case "delete":
		return c.runDelete(ctx, args)
	case "share":
		return c.runShare(ctx, args)
	case "unshare":
		return c.runUnshare(ctx, args)
	case "label":
		return c.runLabel(ctx, args)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}
