package timecode_test

import (
	"strconv"
	"testing"

	"slate/internal/timecode"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		input  string
		fps    int
		frames int
		ok     bool
	}{
		{"1.5s", 30, 45, true},
		{"2m", 30, 3600, true},
		{"30f", 30, 30, true},
		{"500ms", 30, 15, true},
		{"1000", 30, 30, true},
		{"250", 60, 15, true},
		{"0", 30, 0, true},
		{"0.5s", 24, 12, true},
		{"2.5f", 30, 3, true},
		{"-5", 30, 0, false},
		{"-1s", 30, 0, false},
		{"abc", 30, 0, false},
		{"", 30, 0, false},
		{"10x", 30, 0, false},
		{"s", 30, 0, false},
		{"1s", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			frames, ok := timecode.ParseDuration(tc.input, tc.fps)
			if ok != tc.ok {
				t.Fatalf("ParseDuration(%q, %d) ok = %v, want %v", tc.input, tc.fps, ok, tc.ok)
			}
			if ok && frames != tc.frames {
				t.Fatalf("ParseDuration(%q, %d) = %d, want %d", tc.input, tc.fps, frames, tc.frames)
			}
		})
	}
}

func TestFormatFrames(t *testing.T) {
	cases := []struct {
		frames int
		fps    int
		want   string
	}{
		{0, 30, "0f"},
		{15, 30, "15f"},
		{29, 30, "29f"},
		{30, 30, "1s"},
		{45, 30, "1.5s"},
		{90, 30, "3s"},
		{1800, 30, "1m"},
		{3600, 30, "2m"},
		{1830, 30, "61s"},
		{100, 30, "3.3s"},
		{12, 24, "12f"},
		{36, 24, "1.5s"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			got := timecode.FormatFrames(tc.frames, tc.fps)
			if got != tc.want {
				t.Fatalf("FormatFrames(%d, %d) = %q, want %q", tc.frames, tc.fps, got, tc.want)
			}
		})
	}
}

// Rendering a frame count as milliseconds and parsing the bare number back
// must reproduce the millisecond-rounded frame count.
func TestMillisecondRoundTrip(t *testing.T) {
	for _, fps := range []int{24, 25, 30, 60} {
		for frames := 0; frames <= fps*10; frames++ {
			millis := timecode.FramesToMillis(frames, fps)
			reparsed, ok := timecode.ParseDuration(strconv.Itoa(millis), fps)
			if !ok {
				t.Fatalf("fps=%d frames=%d: reparse of %dms failed", fps, frames, millis)
			}
			if reparsed != frames {
				t.Fatalf("fps=%d frames=%d: round trip via %dms produced %d", fps, frames, millis, reparsed)
			}
		}
	}
}
