package interp

import (
	"fmt"
	"strconv"
	"strings"

	"slate/internal/cmdargs"
	"slate/internal/timecode"
)

type pageSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Duration string   `json:"duration"`
	Elements []string `json:"elements,omitempty"`
}

type audioSummary struct {
	ID     string `json:"id"`
	Src    string `json:"src"`
	Volume string `json:"volume"`
	Delay  string `json:"delay"`
	Length string `json:"length"`
	Muted  bool   `json:"muted,omitempty"`
	Loop   bool   `json:"loop,omitempty"`
}

type compSummary struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	FPS    int            `json:"fps"`
	Canvas string         `json:"canvas"`
	Pages  []pageSummary  `json:"pages"`
	Audios []audioSummary `json:"audios,omitempty"`
	Notes  int            `json:"notes,omitempty"`
}

func lsCompCommand() Command {
	return Command{
		Name:         "ls-comp",
		Summary:      "Show the composition structure",
		Usage:        "/ls-comp",
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			if len(ctx.Args) > 0 {
				if _, err := (cmdargs.Spec{}).Parse(ctx.Args, ctx.FPS()); err != nil {
					return nil, Validation(err)
				}
			}

			project := ctx.Project
			fps := project.Composition.FPS
			summary := compSummary{
				ID:     project.ID,
				Name:   project.Name,
				FPS:    fps,
				Canvas: fmt.Sprintf("%dx%d", project.Composition.Width, project.Composition.Height),
				Notes:  len(project.Notes),
			}
			for _, page := range project.Composition.Pages {
				ps := pageSummary{
					ID:       page.ID,
					Name:     page.Name,
					Duration: timecode.FormatFrames(page.Duration, fps),
				}
				for _, elem := range page.Elements {
					label := fmt.Sprintf("%s %s", elem.Type, elem.ID)
					if elem.Type == "text" && elem.Text != "" {
						label += fmt.Sprintf(" %q", truncate(elem.Text, 32))
					}
					ps.Elements = append(ps.Elements, label)
				}
				summary.Pages = append(summary.Pages, ps)
			}
			for _, audio := range project.Composition.Audios {
				summary.Audios = append(summary.Audios, audioSummary{
					ID:     audio.ID,
					Src:    audio.Src,
					Volume: trim(audio.Volume),
					Delay:  timecode.FormatFrames(audio.Delay, fps),
					Length: timecode.FormatFrames(audio.Duration, fps),
					Muted:  audio.Muted,
					Loop:   audio.Loop,
				})
			}

			header := fmt.Sprintf("%s: %d pages, %d audio tracks at %d fps",
				project.Name, len(summary.Pages), len(summary.Audios), fps)
			return &Outcome{Message: header + "\n" + jsonBlock(summary)}, nil
		},
	}
}

func lsFilesCommand() Command {
	spec := cmdargs.Spec{Options: []cmdargs.Option{
		{Long: "interactive", Short: "i", Kind: cmdargs.Switch, Help: "open the file panel"},
	}}
	return Command{
		Name:    "ls-files",
		Summary: "List uploaded file metadata",
		Usage:   "/ls-files [--interactive]",
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, 0)
			if err != nil {
				return nil, Validation(err)
			}
			if ctx.Files == nil {
				return nil, NotFoundf("no file storage available")
			}

			files, err := ctx.Files.GetAllFiles(ctx.Ctx)
			if err != nil {
				return nil, fmt.Errorf("list files: %w", err)
			}

			// Inline payloads never leave the store through this command.
			stripped := make([]FileInfo, len(files))
			for i, file := range files {
				file.DataURL = ""
				stripped[i] = file
			}

			table := &Table{Headers: []string{"ID", "Name", "Kind", "Size"}}
			for _, file := range stripped {
				table.Rows = append(table.Rows, []string{
					file.ID, file.Name, file.Kind, strconv.FormatInt(file.SizeBytes, 10),
				})
			}

			message := fmt.Sprintf("%d files\n%s", len(stripped), jsonBlock(stripped))
			if values.Switch("interactive") {
				if ctx.ToggleFilePanel != nil {
					ctx.ToggleFilePanel()
				}
				message += "\nToggled the file panel."
			}
			return &Outcome{Message: message, Table: table}, nil
		},
	}
}

func helpCommand(registry *Registry) Command {
	return Command{
		Name:    "help",
		Summary: "List available commands",
		Usage:   "/help",
		Run: func(ctx *Context) (*Outcome, error) {
			var b strings.Builder
			for _, cmd := range registry.Commands() {
				fmt.Fprintf(&b, "/%s: %s\n    %s\n", cmd.Name, cmd.Summary, cmd.Usage)
			}
			return &Outcome{Message: strings.TrimRight(b.String(), "\n")}, nil
		},
	}
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
