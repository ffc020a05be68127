package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/BBongSu/AdvanceKeep/internal/client/notes"
	"github.com/BBongSu/AdvanceKeep/internal/models"
)

// stringList collects a repeatable flag value
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	title := fs.String("title", "", "note title")
	text := fs.String("text", "", "note body")
	color := fs.String("color", "", "note color")
	var items stringList
	fs.Var(&items, "item", "checklist item (repeatable)")
	var labelIDs stringList
	fs.Var(&labelIDs, "label", "label id (repeatable)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("usage: keep add [--title T] [--text B | --item I ...] [--color C] [--label L ...]: %w", err)
	}

	draft := notes.Draft{
		Title:  *title,
		Color:  *color,
		Labels: labelIDs,
	}

	if len(items) > 0 {
		draft.Type = models.NoteTypeChecklist
		for _, item := range items {
			draft.Items = append(draft.Items, models.ChecklistItem{Text: item})
		}
	} else {
		draft.Type = models.NoteTypeText
		draft.Text = *text
		if draft.Text == "" && draft.Title == "" {
			body, err := c.io.ReadInput("Text: ")
			if err != nil {
				return fmt.Errorf("failed to read note text: %w", err)
			}
			draft.Text = body
		}
	}

	svc, _, err := c.openNotes(ctx, false)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	note, err := svc.AddNote(ctx, draft)
	if err != nil {
		return err
	}

	c.io.Printf("Added note %s\n", note.ID)
	return nil
}
