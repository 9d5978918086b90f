package interp

import (
	"fmt"

	"slate/internal/cmdargs"
	"slate/internal/comp"
	"slate/internal/timecode"
)

func elementOptions() []cmdargs.Option {
	return []cmdargs.Option{
		{Long: "type", Kind: cmdargs.Enum, Enum: elementTypeNames(), Help: "element kind"},
		{Long: "text", Short: "t", Kind: cmdargs.String, Help: "text content"},
		{Long: "src", Short: "s", Kind: cmdargs.String, Help: "media source file"},
		{Long: "left", Short: "x", Kind: cmdargs.Float, Help: "left offset in pixels"},
		{Long: "top", Short: "y", Kind: cmdargs.Float, Help: "top offset in pixels"},
		{Long: "width", Short: "w", Kind: cmdargs.Float, Min: 0, HasMin: true, ExclusiveMin: true, Help: "width in pixels"},
		{Long: "height", Short: "h", Kind: cmdargs.Float, Min: 0, HasMin: true, ExclusiveMin: true, Help: "height in pixels"},
		{Long: "z", Kind: cmdargs.Int, Help: "stacking order"},
		{Long: "delay", Short: "d", Kind: cmdargs.Duration, Help: "visibility start offset"},
		{Long: "duration", Kind: cmdargs.Duration, Help: "visibility length"},
		{Long: "animation", Kind: cmdargs.String, Help: "entrance animation name"},
	}
}

func elementTypeNames() []string {
	types := comp.AllElementTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

func mergeElement(elem comp.Element, values *cmdargs.Values, fps int, cs *changeSet) (comp.Element, error) {
	if text, ok := values.String("text"); ok {
		elem.Text = cs.text("text", elem.Text, text)
	}
	if src, ok := values.String("src"); ok {
		elem.Src = cs.text("src", elem.Src, src)
	}
	if left, ok := values.Float("left"); ok {
		elem.Left = cs.float("left", elem.Left, left)
	}
	if top, ok := values.Float("top"); ok {
		elem.Top = cs.float("top", elem.Top, top)
	}
	if width, ok := values.Float("width"); ok {
		elem.Width = cs.float("width", elem.Width, width)
	}
	if height, ok := values.Float("height"); ok {
		elem.Height = cs.float("height", elem.Height, height)
	}
	if z, ok := values.Int("z"); ok {
		elem.ZIndex = cs.integer("zIndex", elem.ZIndex, z)
	}
	if delay, ok := values.Frames("delay"); ok {
		elem.Delay = cs.frames("delay", elem.Delay, delay, fps)
	}
	if duration, ok := values.Frames("duration"); ok {
		if duration <= 0 {
			return comp.Element{}, Validationf("--duration must be longer than zero frames")
		}
		elem.Duration = cs.frames("duration", elem.Duration, duration, fps)
	}
	if animation, ok := values.String("animation"); ok {
		elem.Animation = cs.text("animation", elem.Animation, animation)
	}
	return elem, nil
}

// createElement backs both new-element and its new-text shorthand.
func createElement(ctx *Context, spec cmdargs.Spec, fixedType comp.ElementType) (*Outcome, error) {
	values, err := spec.Parse(ctx.Args, ctx.FPS())
	if err != nil {
		return nil, Validation(err)
	}

	elemType := fixedType
	if elemType == "" {
		name, ok := values.String("type")
		if !ok {
			return nil, Validationf("--type is required")
		}
		elemType, _ = comp.ParseElementType(name)
	}

	project := ctx.Project
	pageIdx := 0
	if pageID, ok := values.String("page"); ok {
		pageIdx, ok = project.Composition.FindPage(pageID)
		if !ok {
			return nil, NotFoundf("no page with id %q", pageID)
		}
	}
	if len(project.Composition.Pages) == 0 {
		return nil, NotFoundf("the composition has no pages")
	}

	elem, err := mergeElement(comp.NewElement(elemType, ctx.FPS()), values, ctx.FPS(), &changeSet{})
	if err != nil {
		return nil, err
	}
	switch elemType {
	case comp.ElementText:
		if elem.Text == "" {
			return nil, Validationf("--text is required for text elements")
		}
	case comp.ElementImage, comp.ElementVideo:
		if elem.Src == "" {
			return nil, Validationf("--src is required for %s elements", elemType)
		}
	}

	page := project.Composition.Pages[pageIdx]
	return &Outcome{
		Message: fmt.Sprintf("Created %s element %s on page %s (%gx%g at %g,%g, duration %s)",
			elemType, elem.ID, page.ID, elem.Width, elem.Height, elem.Left, elem.Top,
			timecode.FormatFrames(elem.Duration, ctx.FPS())),
		Project:   comp.AppendElement(project, pageIdx, elem),
		CreatedID: elem.ID,
	}, nil
}

func newElementCommand() Command {
	spec := cmdargs.Spec{
		Options: append(elementOptions(), cmdargs.Option{Long: "page", Short: "p", Kind: cmdargs.String, Help: "target page id"}),
	}
	return Command{
		Name:         "new-element",
		Summary:      "Add an element to a page",
		Usage:        "/new-element --type text|image|video|shape [--page <id>] [--text <value>] [--src <file>] [--left N] [--top N]",
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			return createElement(ctx, spec, "")
		},
	}
}

func newTextCommand() Command {
	options := []cmdargs.Option{{Long: "page", Short: "p", Kind: cmdargs.String, Help: "target page id"}}
	for _, opt := range elementOptions() {
		if opt.Long != "type" && opt.Long != "src" {
			options = append(options, opt)
		}
	}
	spec := cmdargs.Spec{Options: options}
	return Command{
		Name:         "new-text",
		Summary:      "Add a text element to a page",
		Usage:        "/new-text --text <value> [--page <id>] [--left N] [--top N] [--duration <duration>]",
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			return createElement(ctx, spec, comp.ElementText)
		},
	}
}

func setElementCommand() Command {
	spec := cmdargs.Spec{
		Positional: true,
		Options:    append(elementOptions(), repositionOptions()...),
	}
	return Command{
		Name:         "set-element",
		Summary:      "Update or reposition an element",
		Usage:        "/set-element <id> [--text <value>] [--left N] [--duration <duration>] [--before|--after <slot|+offset|id>]",
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, ctx.FPS())
			if err != nil {
				return nil, Validation(err)
			}
			if values.Positional == "" {
				return nil, Validationf("an element id is required")
			}
			move, hasMove, err := parseMove(values)
			if err != nil {
				return nil, err
			}

			project := ctx.Project
			pageIdx, elemIdx, ok := project.Composition.FindElement(values.Positional)
			if !ok {
				return nil, NotFoundf("no element with id %q", values.Positional)
			}

			cs := &changeSet{}
			elem, err := mergeElement(project.Composition.Pages[pageIdx].Elements[elemIdx], values, ctx.FPS(), cs)
			if err != nil {
				return nil, err
			}

			var extra []string
			updated := project
			if len(cs.changes) > 0 {
				updated = comp.ReplaceElement(updated, pageIdx, elemIdx, elem)
			}
			if hasMove {
				// Sibling moves stay inside the owning page's collection.
				findSibling := func(id string) (int, bool) {
					for i, sibling := range updated.Composition.Pages[pageIdx].Elements {
						if sibling.ID == id {
							return i, true
						}
					}
					return -1, false
				}
				target, err := resolveTarget(move, elemIdx, "element", findSibling)
				if err != nil {
					return nil, err
				}
				updated = comp.MoveElement(updated, pageIdx, elemIdx, target)
				final, _ := findSibling(elem.ID)
				extra = append(extra, movedMessage("element", elem.ID, final, len(updated.Composition.Pages[pageIdx].Elements)))
			}

			outcome := &Outcome{
				Message: updateMessage("element", elem.ID, cs.changes, extra),
				Changes: cs.changes,
			}
			if updated != project {
				outcome.Project = updated
			}
			return outcome, nil
		},
	}
}

func rmElementCommand() Command {
	spec := cmdargs.Spec{Positional: true}
	return Command{
		Name:         "rm-element",
		Summary:      "Remove an element from its page",
		Usage:        "/rm-element <id>",
		Confirm:      true,
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, ctx.FPS())
			if err != nil {
				return nil, Validation(err)
			}
			if values.Positional == "" {
				return nil, Validationf("an element id is required")
			}
			pageIdx, elemIdx, ok := ctx.Project.Composition.FindElement(values.Positional)
			if !ok {
				return nil, NotFoundf("no element with id %q", values.Positional)
			}
			return &Outcome{
				Message: fmt.Sprintf("Removed element %s", values.Positional),
				Project: comp.RemoveElement(ctx.Project, pageIdx, elemIdx),
			}, nil
		},
	}
}
