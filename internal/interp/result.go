package interp

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"slate/internal/comp"
	"slate/internal/timecode"
)

// Result is the structured outcome of one command invocation. Handled
// reports whether the command name was recognized at all, independent of
// Success; a host seeing Handled=false may try other interpretations of
// the input.
type Result struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Handled   bool          `json:"handled"`
	CreatedID string        `json:"createdId,omitempty"`
	Changes   []FieldChange `json:"changes,omitempty"`
	Table     *Table        `json:"-"`
}

// FieldChange records one old-to-new field transition of an update command.
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// Table carries listing rows for hosts that render tabular output.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Outcome is what a handler returns on success. Project is nil when the
// document was not changed.
type Outcome struct {
	Message   string
	Project   *comp.Project
	CreatedID string
	Changes   []FieldChange
	Table     *Table
}

// changeSet accumulates field diffs while a handler merges validated
// arguments over an existing entity. Identical values record nothing, so an
// idempotent update naturally yields an empty diff.
type changeSet struct {
	changes []FieldChange
}

func (c *changeSet) text(field, old, value string) string {
	if old != value {
		c.changes = append(c.changes, FieldChange{Field: field, Old: old, New: value})
	}
	return value
}

func (c *changeSet) float(field string, old, value float64) float64 {
	if old != value {
		c.changes = append(c.changes, FieldChange{Field: field, Old: trim(old), New: trim(value)})
	}
	return value
}

func (c *changeSet) integer(field string, old, value int) int {
	if old != value {
		c.changes = append(c.changes, FieldChange{Field: field, Old: strconv.Itoa(old), New: strconv.Itoa(value)})
	}
	return value
}

func (c *changeSet) boolean(field string, old, value bool) bool {
	if old != value {
		c.changes = append(c.changes, FieldChange{Field: field, Old: strconv.FormatBool(old), New: strconv.FormatBool(value)})
	}
	return value
}

// frames records a frame-valued transition rendered as human durations.
func (c *changeSet) frames(field string, old, value, fps int) int {
	if old != value {
		c.changes = append(c.changes, FieldChange{
			Field: field,
			Old:   timecode.FormatFrames(old, fps),
			New:   timecode.FormatFrames(value, fps),
		})
	}
	return value
}

func trim(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// updateMessage renders the per-field diff of an update command.
func updateMessage(kind, id string, changes []FieldChange, extra []string) string {
	var b strings.Builder
	if len(changes) == 0 && len(extra) == 0 {
		fmt.Fprintf(&b, "Updated %s %s: no changes", kind, id)
		return b.String()
	}
	fmt.Fprintf(&b, "Updated %s %s", kind, id)
	for _, change := range changes {
		fmt.Fprintf(&b, "\n- %s: %s -> %s", change.Field, change.Old, change.New)
	}
	for _, line := range extra {
		fmt.Fprintf(&b, "\n- %s", line)
	}
	return b.String()
}

// jsonBlock renders a value as an embedded fenced JSON block for chat-style
// surfaces.
func jsonBlock(value any) string {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Sprintf("```json\n{\"error\": %q}\n```", err.Error())
	}
	return "```json\n" + string(encoded) + "\n```"
}
