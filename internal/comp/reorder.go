package comp

// MoveMode selects how a reposition target is addressed.
type MoveMode int

const (
	// MoveAbsolute addresses a 1-indexed slot in the collection.
	MoveAbsolute MoveMode = iota
	// MoveRelative addresses an offset from the entity's current index.
	MoveRelative
	// MoveSibling addresses another entity of the same collection by id.
	MoveSibling
)

// Move describes one reposition request. Position carries the absolute slot
// or the relative count; SiblingID carries the anchor id for MoveSibling.
type Move struct {
	Before    bool
	Mode      MoveMode
	Position  int
	SiblingID string
}

// TargetIndex resolves the insertion index against the collection as it
// exists before the moved entity is removed. current is the entity's index;
// siblingIndex is the anchor's pre-removal index and is only read for
// MoveSibling. The result is clamped against post-removal bounds later, in
// MoveItem; computing here against the pre-removal collection is what makes
// moves across the entity's own position come out right.
func (m Move) TargetIndex(current, siblingIndex int) int {
	switch m.Mode {
	case MoveAbsolute:
		if m.Before {
			return m.Position - 1
		}
		return m.Position
	case MoveRelative:
		if m.Before {
			return current - m.Position
		}
		return current + m.Position
	case MoveSibling:
		if m.Before {
			return siblingIndex
		}
		return siblingIndex + 1
	default:
		return current
	}
}

// MoveItem removes items[from], clamps target to the post-removal bounds,
// and reinserts the entity there, returning a new slice. The input slice is
// left untouched.
func MoveItem[T any](items []T, from, target int) []T {
	moved := items[from]
	rest := removeAt(items, from)
	if len(rest) == 0 {
		return []T{moved}
	}
	return insertAt(rest, clamp(target, 0, len(rest)-1), moved)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// MoveAudio returns a project with the audio track at from reinserted at
// the clamped target index.
func MoveAudio(p *Project, from, target int) *Project {
	out := *p
	out.Composition.Audios = MoveItem(p.Composition.Audios, from, target)
	return &out
}

// MovePage returns a project with the page at from reinserted at the
// clamped target index.
func MovePage(p *Project, from, target int) *Project {
	out := *p
	out.Composition.Pages = MoveItem(p.Composition.Pages, from, target)
	return &out
}

// MoveElement returns a project with one element of one page reinserted at
// the clamped target index within that page.
func MoveElement(p *Project, pageIdx, from, target int) *Project {
	page := p.Composition.Pages[pageIdx]
	page.Elements = MoveItem(page.Elements, from, target)
	return ReplacePage(p, pageIdx, page)
}
