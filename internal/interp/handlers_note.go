package interp

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"slate/internal/cmdargs"
	"slate/internal/comp"
	"slate/internal/timecode"
)

func newNoteCommand() Command {
	spec := cmdargs.Spec{Options: []cmdargs.Option{
		{Long: "text", Short: "t", Kind: cmdargs.String, Help: "note text"},
		{Long: "time", Kind: cmdargs.Duration, Help: "frame position of the note"},
	}}
	return Command{
		Name:         "new-note",
		Summary:      "Pin an annotation note to a frame",
		Usage:        "/new-note --text <value> [--time <duration>]",
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, ctx.FPS())
			if err != nil {
				return nil, Validation(err)
			}
			text, ok := values.String("text")
			if !ok || text == "" {
				return nil, Validationf("--text is required")
			}
			frame, _ := values.Frames("time")

			note := comp.NewNote(text, frame)
			return &Outcome{
				Message: fmt.Sprintf("Created note %s at %s",
					note.ID, timecode.FormatFrames(note.Time, ctx.FPS())),
				Project:   comp.AppendNote(ctx.Project, note),
				CreatedID: note.ID,
			}, nil
		},
	}
}

func setNoteCommand() Command {
	spec := cmdargs.Spec{
		Positional: true,
		Options: []cmdargs.Option{
			{Long: "text", Short: "t", Kind: cmdargs.String, Help: "note text"},
			{Long: "time", Kind: cmdargs.Duration, Help: "frame position of the note"},
		},
	}
	return Command{
		Name:         "set-note",
		Summary:      "Update a note's text or position",
		Usage:        "/set-note <id> [--text <value>] [--time <duration>]",
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, ctx.FPS())
			if err != nil {
				return nil, Validation(err)
			}
			if values.Positional == "" {
				return nil, Validationf("a note id is required")
			}

			project := ctx.Project
			index, ok := project.FindNote(values.Positional)
			if !ok {
				return nil, NotFoundf("no note with id %q", values.Positional)
			}

			cs := &changeSet{}
			note := project.Notes[index]
			if text, ok := values.String("text"); ok {
				note.Text = cs.text("text", note.Text, text)
			}
			if frame, ok := values.Frames("time"); ok {
				note.Time = cs.frames("time", note.Time, frame, ctx.FPS())
			}

			outcome := &Outcome{
				Message: updateMessage("note", note.ID, cs.changes, nil),
				Changes: cs.changes,
			}
			if len(cs.changes) > 0 {
				outcome.Project = comp.ReplaceNote(project, index, note)
			}
			return outcome, nil
		},
	}
}

func rmNoteCommand() Command {
	spec := cmdargs.Spec{Positional: true}
	return Command{
		Name:         "rm-note",
		Summary:      "Remove a note",
		Usage:        "/rm-note <id>",
		Confirm:      true,
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, ctx.FPS())
			if err != nil {
				return nil, Validation(err)
			}
			if values.Positional == "" {
				return nil, Validationf("a note id is required")
			}
			index, ok := ctx.Project.FindNote(values.Positional)
			if !ok {
				return nil, NotFoundf("no note with id %q", values.Positional)
			}
			return &Outcome{
				Message: fmt.Sprintf("Removed note %s", values.Positional),
				Project: comp.RemoveNote(ctx.Project, index),
			}, nil
		},
	}
}

func lsNotesCommand() Command {
	spec := cmdargs.Spec{Options: []cmdargs.Option{
		{Long: "filter", Short: "f", Kind: cmdargs.String, Help: "case-insensitive substring match on note text"},
	}}
	return Command{
		Name:         "ls-notes",
		Summary:      "List notes sorted by time",
		Usage:        "/ls-notes [--filter <substring>]",
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, ctx.FPS())
			if err != nil {
				return nil, Validation(err)
			}

			fold := cases.Fold()
			filter, _ := values.String("filter")
			needle := fold.String(filter)

			notes := make([]comp.Note, 0, len(ctx.Project.Notes))
			for _, note := range ctx.Project.Notes {
				if needle == "" || strings.Contains(fold.String(note.Text), needle) {
					notes = append(notes, note)
				}
			}
			sort.SliceStable(notes, func(i, j int) bool { return notes[i].Time < notes[j].Time })

			fps := ctx.FPS()
			table := &Table{Headers: []string{"ID", "Time", "Text"}}
			for _, note := range notes {
				table.Rows = append(table.Rows, []string{note.ID, timecode.FormatFrames(note.Time, fps), note.Text})
			}

			header := fmt.Sprintf("%d of %d notes", len(notes), len(ctx.Project.Notes))
			return &Outcome{
				Message: header + "\n" + jsonBlock(notes),
				Table:   table,
			}, nil
		},
	}
}
