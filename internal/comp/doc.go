// Package comp defines the video-composition document model: a project
// containing pages of renderable elements, free-floating audio tracks, and
// annotation notes, all timed in integer frames.
//
// Documents are never edited in place. Every mutation helper returns a new
// Project that shares untouched substructure with its input, so callers can
// keep old snapshots and hand documents across goroutines without copying.
package comp
