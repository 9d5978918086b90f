package interp

import (
	"fmt"
	"strconv"
	"strings"

	"slate/internal/cmdargs"
	"slate/internal/comp"
)

func repositionOptions() []cmdargs.Option {
	return []cmdargs.Option{
		{Long: "before", Short: "b", Kind: cmdargs.String, Help: "move before a slot, +offset, or sibling id"},
		{Long: "after", Short: "a", Kind: cmdargs.String, Help: "move after a slot, +offset, or sibling id"},
	}
}

// parseMove interprets --before/--after values shared by every set-*
// command. A value of the form "+K" addresses K slots away from the
// entity's current index, a bare positive integer addresses an absolute
// 1-indexed slot, and anything else is treated as a sibling id. Supplying
// both directions is a conflict, rejected before any mutation.
func parseMove(values *cmdargs.Values) (comp.Move, bool, error) {
	hasBefore := values.Has("before")
	hasAfter := values.Has("after")
	if hasBefore && hasAfter {
		return comp.Move{}, false, Conflictf("--before and --after cannot be combined")
	}
	if !hasBefore && !hasAfter {
		return comp.Move{}, false, nil
	}

	flag := "after"
	if hasBefore {
		flag = "before"
	}
	raw, _ := values.String(flag)
	move := comp.Move{Before: hasBefore}

	if offset, ok := strings.CutPrefix(raw, "+"); ok {
		count, err := strconv.Atoi(offset)
		if err != nil || count < 1 {
			return comp.Move{}, false, Validationf("--%s offset must be a positive count, got %q", flag, raw)
		}
		move.Mode = comp.MoveRelative
		move.Position = count
		return move, true, nil
	}

	if position, err := strconv.Atoi(raw); err == nil {
		if position < 1 {
			return comp.Move{}, false, Validationf("--%s position is 1-indexed, got %d", flag, position)
		}
		move.Mode = comp.MoveAbsolute
		move.Position = position
		return move, true, nil
	}

	move.Mode = comp.MoveSibling
	move.SiblingID = raw
	return move, true, nil
}

// resolveTarget turns a Move into a pre-removal insertion index. findSibling
// resolves a sibling id inside the same collection.
func resolveTarget(move comp.Move, current int, kind string, findSibling func(string) (int, bool)) (int, error) {
	sibling := -1
	if move.Mode == comp.MoveSibling {
		idx, ok := findSibling(move.SiblingID)
		if !ok {
			return 0, NotFoundf("no %s with id %q to anchor the move", kind, move.SiblingID)
		}
		sibling = idx
	}
	return move.TargetIndex(current, sibling), nil
}

func movedMessage(kind, id string, position, total int) string {
	return fmt.Sprintf("moved %s %s to position %d of %d", kind, id, position+1, total)
}
