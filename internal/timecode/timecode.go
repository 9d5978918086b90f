package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDuration converts a duration string into frames at the given frame
// rate. A bare numeric string is interpreted as milliseconds. A numeric
// value followed by a unit suffix (ms, s, m, f) is interpreted in that
// unit; "f" counts frames directly. Negative values and strings matching
// neither form report ok=false.
func ParseDuration(text string, fps int) (frames int, ok bool) {
	if fps <= 0 {
		return 0, false
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, false
	}

	value, unit, ok := splitUnit(trimmed)
	if !ok {
		return 0, false
	}
	if value < 0 {
		return 0, false
	}

	switch unit {
	case "":
		// Bare numbers remain milliseconds for back-compat.
		return round(value / 1000 * float64(fps)), true
	case "ms":
		return round(value / 1000 * float64(fps)), true
	case "s":
		return round(value * float64(fps)), true
	case "m":
		return round(value * 60 * float64(fps)), true
	case "f":
		return round(value), true
	default:
		return 0, false
	}
}

// FormatFrames renders a frame count as the shortest human duration at the
// given frame rate: "0f" for zero, raw frames below one second, whole
// minutes as "Nm", whole seconds as "Ns", otherwise one-decimal seconds.
func FormatFrames(frames, fps int) string {
	if frames == 0 {
		return "0f"
	}
	if fps <= 0 || frames < fps {
		return strconv.Itoa(frames) + "f"
	}
	framesPerMinute := fps * 60
	if frames%framesPerMinute == 0 {
		return strconv.Itoa(frames/framesPerMinute) + "m"
	}
	if frames%fps == 0 {
		return strconv.Itoa(frames/fps) + "s"
	}
	return fmt.Sprintf("%.1fs", float64(frames)/float64(fps))
}

// FramesToMillis converts frames to the nearest whole millisecond.
func FramesToMillis(frames, fps int) int {
	if fps <= 0 {
		return 0
	}
	return round(float64(frames) / float64(fps) * 1000)
}

func splitUnit(text string) (value float64, unit string, ok bool) {
	numeric := text
	switch {
	case strings.HasSuffix(text, "ms"):
		numeric, unit = text[:len(text)-2], "ms"
	case strings.HasSuffix(text, "s"):
		numeric, unit = text[:len(text)-1], "s"
	case strings.HasSuffix(text, "m"):
		numeric, unit = text[:len(text)-1], "m"
	case strings.HasSuffix(text, "f"):
		numeric, unit = text[:len(text)-1], "f"
	}
	value, err := strconv.ParseFloat(numeric, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, "", false
	}
	return value, unit, true
}

func round(value float64) int {
	return int(math.Round(value))
}
