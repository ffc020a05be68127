package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing note id. Usage: keep edit <id> [--title T] [--text B] [--color C]")
	}
	id := args[0]

	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	title := fs.String("title", "", "new title")
	text := fs.String("text", "", "new body")
	color := fs.String("color", "", "new color")
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("usage: keep edit <id> [--title T] [--text B] [--color C]: %w", err)
	}

	changed := false
	fs.Visit(func(*flag.Flag) { changed = true })
	if !changed {
		return fmt.Errorf("nothing to change; pass --title, --text or --color")
	}

	svc, _, err := c.openNotes(ctx, true)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	for _, note := range svc.Notes() {
		if note.ID != id {
			continue
		}

		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "title":
				note.Title = *title
			case "text":
				note.Text = *text
			case "color":
				note.Color = *color
			}
		})

		if _, err := svc.UpdateNote(ctx, note); err != nil {
			return err
		}

		c.io.Printf("Updated note %s\n", id)
		return nil
	}

	return fmt.Errorf("note %s not found", id)
}
