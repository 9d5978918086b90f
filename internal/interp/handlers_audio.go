package interp

import (
	"fmt"

	"slate/internal/cmdargs"
	"slate/internal/comp"
	"slate/internal/timecode"
)

func audioOptions(creation bool) []cmdargs.Option {
	boolKind := cmdargs.Bool
	if creation {
		// Creation commands take plain switches; updates need an explicit
		// true/false so a flag can be turned back off.
		boolKind = cmdargs.Switch
	}
	return []cmdargs.Option{
		{Long: "src", Short: "s", Kind: cmdargs.String, Help: "audio source file"},
		{Long: "volume", Short: "v", Kind: cmdargs.Float, Min: 0, Max: 1, HasMin: true, HasMax: true, Help: "volume between 0 and 1"},
		{Long: "delay", Short: "d", Kind: cmdargs.Duration, Help: "start offset on the timeline"},
		{Long: "duration", Short: "t", Kind: cmdargs.Duration, Help: "clip length"},
		{Long: "trim-before", Kind: cmdargs.Duration, Help: "leading trim"},
		{Long: "trim-after", Kind: cmdargs.Duration, Help: "trailing trim"},
		{Long: "playback-rate", Short: "r", Kind: cmdargs.Float, Min: 0, HasMin: true, ExclusiveMin: true, Help: "playback speed"},
		{Long: "tone-frequency", Kind: cmdargs.Float, Min: 0.01, Max: 2, HasMin: true, HasMax: true, Help: "pitch correction factor"},
		{Long: "muted", Short: "m", Kind: boolKind, Help: "mute the track"},
		{Long: "loop", Short: "l", Kind: boolKind, Help: "loop the track"},
	}
}

// mergeAudio overlays validated values onto an audio track, recording field
// transitions in cs.
func mergeAudio(audio comp.Audio, values *cmdargs.Values, fps int, cs *changeSet) (comp.Audio, error) {
	if src, ok := values.String("src"); ok {
		audio.Src = cs.text("src", audio.Src, src)
	}
	if volume, ok := values.Float("volume"); ok {
		audio.Volume = cs.float("volume", audio.Volume, volume)
	}
	if delay, ok := values.Frames("delay"); ok {
		audio.Delay = cs.frames("delay", audio.Delay, delay, fps)
	}
	if duration, ok := values.Frames("duration"); ok {
		if duration <= 0 {
			return comp.Audio{}, Validationf("--duration must be longer than zero frames")
		}
		audio.Duration = cs.frames("duration", audio.Duration, duration, fps)
	}
	if trim, ok := values.Frames("trim-before"); ok {
		audio.TrimBefore = cs.frames("trimBefore", audio.TrimBefore, trim, fps)
	}
	if trim, ok := values.Frames("trim-after"); ok {
		audio.TrimAfter = cs.frames("trimAfter", audio.TrimAfter, trim, fps)
	}
	if rate, ok := values.Float("playback-rate"); ok {
		audio.PlaybackRate = cs.float("playbackRate", audio.PlaybackRate, rate)
	}
	if freq, ok := values.Float("tone-frequency"); ok {
		audio.ToneFrequency = cs.float("toneFrequency", audio.ToneFrequency, freq)
	}
	if muted, ok := values.Bool("muted"); ok {
		audio.Muted = cs.boolean("muted", audio.Muted, muted)
	}
	if loop, ok := values.Bool("loop"); ok {
		audio.Loop = cs.boolean("loop", audio.Loop, loop)
	}
	return audio, nil
}

func newAudioCommand() Command {
	spec := cmdargs.Spec{Options: audioOptions(true)}
	return Command{
		Name:         "new-audio",
		Summary:      "Add an audio track to the composition",
		Usage:        "/new-audio --src <file> [--volume 0..1] [--delay <duration>] [--duration <duration>] [--muted] [--loop]",
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, ctx.FPS())
			if err != nil {
				return nil, Validation(err)
			}
			src, ok := values.String("src")
			if !ok || src == "" {
				return nil, Validationf("--src is required")
			}

			audio, err := mergeAudio(comp.NewAudio(src, ctx.FPS()), values, ctx.FPS(), &changeSet{})
			if err != nil {
				return nil, err
			}

			fps := ctx.FPS()
			return &Outcome{
				Message: fmt.Sprintf("Created audio %s (src=%s volume=%s delay=%s duration=%s)",
					audio.ID, audio.Src, trim(audio.Volume),
					timecode.FormatFrames(audio.Delay, fps),
					timecode.FormatFrames(audio.Duration, fps)),
				Project:   comp.AppendAudio(ctx.Project, audio),
				CreatedID: audio.ID,
			}, nil
		},
	}
}

func setAudioCommand() Command {
	spec := cmdargs.Spec{
		Positional: true,
		Options:    append(audioOptions(false), repositionOptions()...),
	}
	return Command{
		Name:         "set-audio",
		Summary:      "Update or reposition an audio track",
		Usage:        "/set-audio <id> [--volume 0..1] [--delay <duration>] [--muted true|false] [--before|--after <slot|+offset|id>]",
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, ctx.FPS())
			if err != nil {
				return nil, Validation(err)
			}
			if values.Positional == "" {
				return nil, Validationf("an audio id is required")
			}
			move, hasMove, err := parseMove(values)
			if err != nil {
				return nil, err
			}

			project := ctx.Project
			index, ok := project.Composition.FindAudio(values.Positional)
			if !ok {
				return nil, NotFoundf("no audio with id %q", values.Positional)
			}

			cs := &changeSet{}
			audio, err := mergeAudio(project.Composition.Audios[index], values, ctx.FPS(), cs)
			if err != nil {
				return nil, err
			}

			var extra []string
			updated := project
			if len(cs.changes) > 0 {
				updated = comp.ReplaceAudio(updated, index, audio)
			}
			if hasMove {
				target, err := resolveTarget(move, index, "audio", updated.Composition.FindAudio)
				if err != nil {
					return nil, err
				}
				updated = comp.MoveAudio(updated, index, target)
				final, _ := updated.Composition.FindAudio(audio.ID)
				extra = append(extra, movedMessage("audio", audio.ID, final, len(updated.Composition.Audios)))
			}

			outcome := &Outcome{
				Message: updateMessage("audio", audio.ID, cs.changes, extra),
				Changes: cs.changes,
			}
			if updated != project {
				outcome.Project = updated
			}
			return outcome, nil
		},
	}
}

func rmAudioCommand() Command {
	spec := cmdargs.Spec{Positional: true}
	return Command{
		Name:         "rm-audio",
		Summary:      "Remove an audio track",
		Usage:        "/rm-audio <id>",
		Confirm:      true,
		NeedsProject: true,
		Run: func(ctx *Context) (*Outcome, error) {
			values, err := spec.Parse(ctx.Args, ctx.FPS())
			if err != nil {
				return nil, Validation(err)
			}
			if values.Positional == "" {
				return nil, Validationf("an audio id is required")
			}
			index, ok := ctx.Project.Composition.FindAudio(values.Positional)
			if !ok {
				return nil, NotFoundf("no audio with id %q", values.Positional)
			}
			return &Outcome{
				Message: fmt.Sprintf("Removed audio %s", values.Positional),
				Project: comp.RemoveAudio(ctx.Project, index),
			}, nil
		},
	}
}
