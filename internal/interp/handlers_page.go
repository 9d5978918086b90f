package interp

import (
	"fmt"

	"slate/internal/cmdargs"
	"slate/internal/comp"
	"slate/internal/timecode"
)

func pageOptions() []cmdargs.Option {
	return []cmdargs.Option{
		{Long: "name", Short: "n", Kind: cmdargs.String, Help: "page name"},
		{Long: "duration", Short: "d", Kind: cmdargs.Duration, Help: "scene length"},
		{Long: "background", Kind: cmdargs.String, Help: "background color"},
	}
}

func mergePage(page comp.Page, values *cmdargs.Values, fps int, cs *changeSet) comp.Page {
	if name, ok := values.String("name"); ok {
		page.Name = cs.text("name", page.Name, name)
	}
	if duration, ok := values.Frames("duration"); ok {
		page.Duration = cs.frames("duration", page.Duration, duration, fps)
	}
	if background, ok := values.String("background"); ok {
		page.BackgroundColor = cs.text("backgroundColor", page.BackgroundColor, background)
	}
	return page
}

func newPageCommand() Command {
	spec := cmdargs.Spec{Options: pageOptions()}
	return Command{
		Name:         "new-page",
		Summary:      "Append a page to the composition",
		Usage:        "/new-page [--name <value>] [--duration <duration>] [--background <color>]",
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, ctx.FPS())
			if err != nil {
				return nil, Validation(err)
			}

			name, ok := values.String("name")
			if !ok || name == "" {
				name = fmt.Sprintf("Page %d", len(ctx.Project.Composition.Pages)+1)
			}
			page := mergePage(comp.NewPage(name, ctx.FPS()), values, ctx.FPS(), &changeSet{})

			return &Outcome{
				Message: fmt.Sprintf("Created page %s (%q, duration %s)",
					page.ID, page.Name, timecode.FormatFrames(page.Duration, ctx.FPS())),
				Project:   comp.AppendPage(ctx.Project, page),
				CreatedID: page.ID,
			}, nil
		},
	}
}

func setPageCommand() Command {
	spec := cmdargs.Spec{
		Positional: true,
		Options:    append(pageOptions(), repositionOptions()...),
	}
	return Command{
		Name:         "set-page",
		Summary:      "Update or reorder a page",
		Usage:        "/set-page <id> [--name <value>] [--duration <duration>] [--before|--after <slot|+offset|id>]",
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, ctx.FPS())
			if err != nil {
				return nil, Validation(err)
			}
			if values.Positional == "" {
				return nil, Validationf("a page id is required")
			}
			move, hasMove, err := parseMove(values)
			if err != nil {
				return nil, err
			}

			project := ctx.Project
			index, ok := project.Composition.FindPage(values.Positional)
			if !ok {
				return nil, NotFoundf("no page with id %q", values.Positional)
			}

			cs := &changeSet{}
			page := mergePage(project.Composition.Pages[index], values, ctx.FPS(), cs)

			var extra []string
			updated := project
			if len(cs.changes) > 0 {
				updated = comp.ReplacePage(updated, index, page)
			}
			if hasMove {
				target, err := resolveTarget(move, index, "page", updated.Composition.FindPage)
				if err != nil {
					return nil, err
				}
				updated = comp.MovePage(updated, index, target)
				final, _ := updated.Composition.FindPage(page.ID)
				extra = append(extra, movedMessage("page", page.ID, final, len(updated.Composition.Pages)))
			}

			outcome := &Outcome{
				Message: updateMessage("page", page.ID, cs.changes, extra),
				Changes: cs.changes,
			}
			if updated != project {
				outcome.Project = updated
			}
			return outcome, nil
		},
	}
}

func rmPageCommand() Command {
	spec := cmdargs.Spec{Positional: true}
	return Command{
		Name:         "rm-page",
		Summary:      "Remove a page and everything on it",
		Usage:        "/rm-page <id>",
		Confirm:      true,
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, ctx.FPS())
			if err != nil {
				return nil, Validation(err)
			}
			if values.Positional == "" {
				return nil, Validationf("a page id is required")
			}
			index, ok := ctx.Project.Composition.FindPage(values.Positional)
			if !ok {
				return nil, NotFoundf("no page with id %q", values.Positional)
			}
			if len(ctx.Project.Composition.Pages) == 1 {
				return nil, Conflictf("cannot remove the last page of the composition")
			}
			return &Outcome{
				Message: fmt.Sprintf("Removed page %s", values.Positional),
				Project: comp.RemovePage(ctx.Project, index),
			}, nil
		},
	}
}
