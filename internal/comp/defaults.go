package comp

import "time"

const (
	// DefaultClipSeconds is the duration assigned to new pages, elements,
	// and audio tracks when the caller does not supply one.
	DefaultClipSeconds = 5

	defaultBackgroundColor = "#ffffff"
	defaultElementWidth    = 400
	defaultElementHeight   = 300
	defaultVolume          = 1.0
	defaultPlaybackRate    = 1.0
	defaultToneFrequency   = 1.0
)

// NewProject builds an empty project with a single starting page.
func NewProject(name string, fps, width, height int) *Project {
	return &Project{
		ID:   NewID("prj"),
		Name: name,
		Composition: Composition{
			FPS:    fps,
			Width:  width,
			Height: height,
			Pages:  []Page{NewPage("Page 1", fps)},
		},
	}
}

// NewPage builds a page with the default duration at the given frame rate.
func NewPage(name string, fps int) Page {
	return Page{
		ID:              NewID("page"),
		Name:            name,
		Duration:        DefaultClipSeconds * fps,
		BackgroundColor: defaultBackgroundColor,
	}
}

// NewElement builds an element of the given type with default placement and
// the default visibility window at the given frame rate.
func NewElement(elemType ElementType, fps int) Element {
	return Element{
		ID:       NewID("el"),
		Type:     elemType,
		Width:    defaultElementWidth,
		Height:   defaultElementHeight,
		Duration: DefaultClipSeconds * fps,
	}
}

// NewAudio builds an audio track at full volume with no trim and the
// default duration at the given frame rate.
func NewAudio(src string, fps int) Audio {
	return Audio{
		ID:            NewID("aud"),
		Src:           src,
		Volume:        defaultVolume,
		Duration:      DefaultClipSeconds * fps,
		PlaybackRate:  defaultPlaybackRate,
		ToneFrequency: defaultToneFrequency,
	}
}

// NewNote builds a note pinned to the given frame.
func NewNote(text string, frame int) Note {
	return Note{
		ID:        NewID("note"),
		Time:      frame,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
