// Package logging builds slog loggers for the slate host: a compact
// console handler for terminals and a JSON handler for log files and
// machine consumers.
package logging
