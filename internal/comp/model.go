package comp

import (
	"strings"
	"time"
)

// ElementType identifies the renderable kind of an element.
type ElementType string

const (
	ElementText  ElementType = "text"
	ElementImage ElementType = "image"
	ElementVideo ElementType = "video"
	ElementShape ElementType = "shape"
)

var allElementTypes = []ElementType{
	ElementText,
	ElementImage,
	ElementVideo,
	ElementShape,
}

// AllElementTypes returns the ordered list of known element types.
func AllElementTypes() []ElementType {
	cp := make([]ElementType, len(allElementTypes))
	copy(cp, allElementTypes)
	return cp
}

// ParseElementType converts a string into a known ElementType.
func ParseElementType(value string) (ElementType, bool) {
	normalized := ElementType(strings.ToLower(strings.TrimSpace(value)))
	for _, t := range allElementTypes {
		if t == normalized {
			return t, true
		}
	}
	return "", false
}

// Project is the root document handed to the interpreter. The interpreter
// never retains it between calls; ownership stays with the host session.
type Project struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Composition Composition    `json:"composition"`
	Notes       []Note         `json:"notes,omitempty"`
	AppState    map[string]any `json:"appState,omitempty"`
}

// Composition is the complete timeline: canvas dimensions, the frame rate
// driving every time conversion, scene pages, and audio tracks.
type Composition struct {
	FPS    int     `json:"fps"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Pages  []Page  `json:"pages"`
	Audios []Audio `json:"audios,omitempty"`
}

// Page is one sequential scene. Slice order inside Composition.Pages is the
// presentation order.
type Page struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Duration        int       `json:"duration"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	Elements        []Element `json:"elements,omitempty"`
}

// Element is a single renderable item on a page. Slice order doubles as
// z-order and the default timeline lane assignment.
type Element struct {
	ID        string      `json:"id"`
	Type      ElementType `json:"type"`
	Left      float64     `json:"left"`
	Top       float64     `json:"top"`
	Width     float64     `json:"width"`
	Height    float64     `json:"height"`
	ZIndex    int         `json:"zIndex"`
	Text      string      `json:"text,omitempty"`
	Src       string      `json:"src,omitempty"`
	Delay     int         `json:"delay"`
	Duration  int         `json:"duration"`
	Animation string      `json:"animation,omitempty"`
}

// Audio is a sound clip independent of page structure.
type Audio struct {
	ID            string  `json:"id"`
	Src           string  `json:"src"`
	Volume        float64 `json:"volume"`
	Delay         int     `json:"delay"`
	Duration      int     `json:"duration"`
	TrimBefore    int     `json:"trimBefore"`
	TrimAfter     int     `json:"trimAfter"`
	PlaybackRate  float64 `json:"playbackRate"`
	Muted         bool    `json:"muted"`
	Loop          bool    `json:"loop"`
	ToneFrequency float64 `json:"toneFrequency"`
}

// Note is a free-floating annotation pinned to a frame.
type Note struct {
	ID        string    `json:"id"`
	Time      int       `json:"time"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// FindPage returns the index of the page with the given id.
func (c Composition) FindPage(id string) (int, bool) {
	for i, page := range c.Pages {
		if page.ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindAudio returns the index of the audio track with the given id.
func (c Composition) FindAudio(id string) (int, bool) {
	for i, audio := range c.Audios {
		if audio.ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindElement locates an element by id across all pages, returning the
// owning page index and the element index within it.
func (c Composition) FindElement(id string) (pageIdx, elemIdx int, ok bool) {
	for pi, page := range c.Pages {
		for ei, elem := range page.Elements {
			if elem.ID == id {
				return pi, ei, true
			}
		}
	}
	return -1, -1, false
}

// FindNote returns the index of the note with the given id.
func (p *Project) FindNote(id string) (int, bool) {
	for i, note := range p.Notes {
		if note.ID == id {
			return i, true
		}
	}
	return -1, false
}
