package cmdargs_test

import (
	"strings"
	"testing"

	"slate/internal/cmdargs"
)

func audioSpec() cmdargs.Spec {
	return cmdargs.Spec{
		Positional: true,
		Options: []cmdargs.Option{
			{Long: "volume", Short: "v", Kind: cmdargs.Float, Min: 0, Max: 1, HasMin: true, HasMax: true},
			{Long: "playback-rate", Short: "r", Kind: cmdargs.Float, Min: 0, HasMin: true, ExclusiveMin: true},
			{Long: "tone-frequency", Kind: cmdargs.Float, Min: 0.01, Max: 2, HasMin: true, HasMax: true},
			{Long: "delay", Short: "d", Kind: cmdargs.Duration},
			{Long: "muted", Short: "m", Kind: cmdargs.Bool},
			{Long: "loop", Kind: cmdargs.Switch},
			{Long: "type", Kind: cmdargs.Enum, Enum: []string{"text", "image", "video"}},
			{Long: "src", Short: "s", Kind: cmdargs.String},
		},
	}
}

func TestParseAliasesAndPositional(t *testing.T) {
	values, err := audioSpec().Parse([]string{"aud-1", "-v", "0.5", "--delay", "1.5s", "--loop"}, 30)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if values.Positional != "aud-1" {
		t.Fatalf("positional = %q", values.Positional)
	}
	if volume, ok := values.Float("volume"); !ok || volume != 0.5 {
		t.Fatalf("volume = (%v, %v)", volume, ok)
	}
	if frames, ok := values.Frames("delay"); !ok || frames != 45 {
		t.Fatalf("delay frames = (%d, %v)", frames, ok)
	}
	if !values.Switch("loop") {
		t.Fatal("loop switch not set")
	}
	if values.Has("muted") {
		t.Fatal("muted should be absent")
	}
}

func TestParseFailures(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--nope", "1"}, "unknown option"},
		{"missing value", []string{"--volume"}, "missing value"},
		{"volume above range", []string{"--volume", "1.5"}, "between 0 and 1"},
		{"tone frequency above range", []string{"--tone-frequency", "3"}, "between 0.01 and 2"},
		{"playback rate zero", []string{"--playback-rate", "0"}, "greater than 0"},
		{"bad bool literal", []string{"--muted", "yes"}, `"true" or "false"`},
		{"bool literal case sensitive", []string{"--muted", "True"}, `"true" or "false"`},
		{"bad enum", []string{"--type", "gif"}, "one of text, image, video"},
		{"bad duration", []string{"--delay", "abc"}, "not a valid duration"},
		{"negative duration", []string{"--delay", "-5"}, "not a valid duration"},
		{"second positional", []string{"aud-1", "aud-2"}, "unexpected argument"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := audioSpec().Parse(tc.args, 30)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestParseRejectsPositionalWhenNotAllowed(t *testing.T) {
	spec := cmdargs.Spec{Options: []cmdargs.Option{{Long: "text", Kind: cmdargs.String}}}
	if _, err := spec.Parse([]string{"stray"}, 30); err == nil {
		t.Fatal("expected error for stray positional token")
	}
}

func TestParseBoolValueOption(t *testing.T) {
	values, err := audioSpec().Parse([]string{"--muted", "false"}, 30)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	muted, ok := values.Bool("muted")
	if !ok || muted {
		t.Fatalf("muted = (%v, %v)", muted, ok)
	}
}

func TestParseLastValueWins(t *testing.T) {
	values, err := audioSpec().Parse([]string{"--volume", "0.2", "-v", "0.8"}, 30)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if volume, _ := values.Float("volume"); volume != 0.8 {
		t.Fatalf("volume = %v", volume)
	}
}
