// Package projectstore persists composition documents and uploaded-file
// metadata in SQLite. It backs the host-side collaborators the interpreter
// consumes; the interpreter itself never reaches the database.
package projectstore
