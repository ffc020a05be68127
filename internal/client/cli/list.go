package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/BBongSu/AdvanceKeep/internal/models"
	"github.com/BBongSu/AdvanceKeep/internal/views"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	search := fs.String("search", "", "substring filter")
	scope := fs.String("scope", "active", "active, archive or trash")
	labelID := fs.String("label", "", "restrict to one label id")
	order := fs.String("order", "latest", "latest or oldest")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("usage: keep list [--search Q] [--scope S] [--label L] [--order O]: %w", err)
	}

	query := views.Query{
		Search:  *search,
		LabelID: *labelID,
	}

	switch *scope {
	case "active":
		query.Scope = views.ScopeActive
	case "archive":
		query.Scope = views.ScopeArchive
	case "trash":
		query.Scope = views.ScopeTrash
	default:
		return fmt.Errorf("unknown scope: %s. Use: active, archive or trash", *scope)
	}

	switch *order {
	case "latest":
		query.Order = views.SortLatest
	case "oldest":
		query.Order = views.SortOldest
	default:
		return fmt.Errorf("unknown order: %s. Use: latest or oldest", *order)
	}

	svc, user, err := c.openNotes(ctx, true)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	labelSvc := c.openLabels(ctx, user, true)
	defer func() { _ = labelSvc.Close() }()
	userLabels := labelSvc.Labels()

	visible := views.Apply(svc.Notes(), query)

	if len(visible) == 0 {
		c.io.Println("No notes found.")
		return nil
	}

	c.io.Printf("Found %d note(s):\n", len(visible))
	c.io.Println()

	for i, note := range visible {
		c.printNoteLine(i+1, note, userLabels, user)
	}

	if syncErr := svc.LastSyncError(); syncErr != "" {
		c.io.Println()
		c.io.Printf("Warning: last sync failed: %s\n", syncErr)
	}

	return nil
}

func (c *Cli) printNoteLine(n int, note *models.Note, userLabels []*models.Label, user *models.User) {
	marker := " "
	if note.IsPinned {
		marker = "*"
	}

	title := note.Title
	if title == "" {
		title = "(untitled)"
	}

	c.io.Printf("%s %d. %s\n", marker, n, title)
	c.io.Printf("     ID: %s\n", note.ID)

	if note.Type == models.NoteTypeChecklist {
		done := 0
		for _, item := range note.Items {
			if item.Checked {
				done++
			}
		}
		c.io.Printf("     Checklist: %d/%d done\n", done, len(note.Items))
	} else if note.Text != "" {
		c.io.Printf("     %s\n", firstLine(note.Text))
	}

	if resolved := views.ResolveLabels(note, userLabels); len(resolved) > 0 {
		names := make([]string, 0, len(resolved))
		for _, label := range resolved {
			names = append(names, label.Name)
		}
		c.io.Printf("     Labels: %s\n", strings.Join(names, ", "))
	}

	if user != nil && note.Owner() != user.ID {
		c.io.Printf("     Shared by: %s\n", note.OwnerName)
	} else if len(note.SharedWith) > 0 {
		c.io.Printf("     Shared with %d user(s)\n", len(note.SharedWith))
	}

	c.io.Println()
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}
