// Package timecode converts between human duration strings and integer
// frame counts at a composition frame rate.
package timecode
