package comp

// Generic copy-on-write slice helpers shared by every entity family.
// The input slice is never written to; untouched items carry over by value.

func appendItem[T any](items []T, item T) []T {
	out := make([]T, len(items)+1)
	copy(out, items)
	out[len(items)] = item
	return out
}

func replaceAt[T any](items []T, index int, item T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[index] = item
	return out
}

func removeAt[T any](items []T, index int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}

func insertAt[T any](items []T, index int, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:index]...)
	out = append(out, item)
	return append(out, items[index:]...)
}

// AppendAudio returns a project with the audio track appended.
func AppendAudio(p *Project, audio Audio) *Project {
	out := *p
	out.Composition.Audios = appendItem(p.Composition.Audios, audio)
	return &out
}

// ReplaceAudio returns a project with the audio track at index replaced.
func ReplaceAudio(p *Project, index int, audio Audio) *Project {
	out := *p
	out.Composition.Audios = replaceAt(p.Composition.Audios, index, audio)
	return &out
}

// RemoveAudio returns a project without the audio track at index.
func RemoveAudio(p *Project, index int) *Project {
	out := *p
	out.Composition.Audios = removeAt(p.Composition.Audios, index)
	return &out
}

// AppendPage returns a project with the page appended.
func AppendPage(p *Project, page Page) *Project {
	out := *p
	out.Composition.Pages = appendItem(p.Composition.Pages, page)
	return &out
}

// ReplacePage returns a project with the page at index replaced.
func ReplacePage(p *Project, index int, page Page) *Project {
	out := *p
	out.Composition.Pages = replaceAt(p.Composition.Pages, index, page)
	return &out
}

// RemovePage returns a project without the page at index.
func RemovePage(p *Project, index int) *Project {
	out := *p
	out.Composition.Pages = removeAt(p.Composition.Pages, index)
	return &out
}

// AppendElement returns a project with the element appended to the page at
// pageIdx.
func AppendElement(p *Project, pageIdx int, elem Element) *Project {
	page := p.Composition.Pages[pageIdx]
	page.Elements = appendItem(page.Elements, elem)
	return ReplacePage(p, pageIdx, page)
}

// ReplaceElement returns a project with one element of one page replaced.
func ReplaceElement(p *Project, pageIdx, elemIdx int, elem Element) *Project {
	page := p.Composition.Pages[pageIdx]
	page.Elements = replaceAt(page.Elements, elemIdx, elem)
	return ReplacePage(p, pageIdx, page)
}

// RemoveElement returns a project without one element of one page.
func RemoveElement(p *Project, pageIdx, elemIdx int) *Project {
	page := p.Composition.Pages[pageIdx]
	page.Elements = removeAt(page.Elements, elemIdx)
	return ReplacePage(p, pageIdx, page)
}

// AppendNote returns a project with the note appended.
func AppendNote(p *Project, note Note) *Project {
	out := *p
	out.Notes = appendItem(p.Notes, note)
	return &out
}

// ReplaceNote returns a project with the note at index replaced.
func ReplaceNote(p *Project, index int, note Note) *Project {
	out := *p
	out.Notes = replaceAt(p.Notes, index, note)
	return &out
}

// RemoveNote returns a project without the note at index.
func RemoveNote(p *Project, index int) *Project {
	out := *p
	out.Notes = removeAt(p.Notes, index)
	return &out
}
