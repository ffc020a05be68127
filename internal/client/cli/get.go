package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BBongSu/AdvanceKeep/internal/models"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing note id. Usage: keep get <id>")
	}
	id := args[0]

	svc, _, err := c.openNotes(ctx, true)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	var note *models.Note
	for _, n := range svc.Notes() {
		if n.ID == id {
			note = n
			break
		}
	}
	if note == nil {
		return fmt.Errorf("note %s not found", id)
	}

	title := note.Title
	if title == "" {
		title = "(untitled)"
	}

	c.io.Printf("=== %s ===\n", title)
	c.io.Printf("ID:      %s\n", note.ID)
	c.io.Printf("Owner:   %s\n", note.OwnerName)
	c.io.Printf("Created: %s\n", note.CreatedAt.Format(time.RFC3339))
	c.io.Printf("Updated: %s\n", note.UpdatedAt.Format(time.RFC3339))

	var flags []string
	if note.IsPinned {
		flags = append(flags, "pinned")
	}
	if note.IsArchived {
		flags = append(flags, "archived")
	}
	if note.InTrash {
		flags = append(flags, "trashed")
	}
	if len(flags) > 0 {
		c.io.Printf("Flags:   %s\n", strings.Join(flags, ", "))
	}

	if len(note.SharedWith) > 0 {
		names := note.SharedWithNames
		if len(names) != len(note.SharedWith) {
			names = note.SharedWith
		}
		c.io.Printf("Shared with: %s\n", strings.Join(names, ", "))
	}

	c.io.Println()
	if note.Type == models.NoteTypeChecklist {
		for _, item := range note.Items {
			box := "[ ]"
			if item.Checked {
				box = "[x]"
			}
			c.io.Printf("%s %s\n", box, item.Text)
		}
	} else if note.Text != "" {
		c.io.Println(note.Text)
	}

	if len(note.Images) > 0 {
		c.io.Println()
		c.io.Printf("%d image(s) attached\n", len(note.Images))
	}

	return nil
}
