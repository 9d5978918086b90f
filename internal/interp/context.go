package interp

import (
	"context"
	"log/slog"
	"time"

	"slate/internal/comp"
)

// FileInfo is the non-binary metadata of an uploaded asset. DataURL may
// carry an inline payload inside the store; listing commands always strip
// it before returning metadata to the caller.
type FileInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Src       string    `json:"src"`
	SizeBytes int64     `json:"sizeBytes"`
	MimeType  string    `json:"mimeType,omitempty"`
	DataURL   string    `json:"dataUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FileStore is the collaborator serving uploaded-file metadata.
type FileStore interface {
	GetAllFiles(ctx context.Context) ([]FileInfo, error)
}

// Env carries the document snapshot and collaborator handles for one
// dispatch. The interpreter reads it and never retains it.
type Env struct {
	Project *comp.Project
	Files   FileStore
	// ToggleFilePanel is an optional UI callback used by the interactive
	// variant of the file listing command.
	ToggleFilePanel func()
	Logger          *slog.Logger
}

// Context is the per-invocation view handed to a handler: the parsed
// argument tokens plus everything from Env.
type Context struct {
	Ctx             context.Context
	Project         *comp.Project
	Files           FileStore
	ToggleFilePanel func()
	Logger          *slog.Logger
	Args            []string
}

// FPS returns the document frame rate, or zero without a project.
func (c *Context) FPS() int {
	if c.Project == nil {
		return 0
	}
	return c.Project.Composition.FPS
}
