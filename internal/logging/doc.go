// Package logging assembles the slog loggers used by orgplan.
//
// It owns the console and JSON handlers, level parsing and output plumbing,
// and context helpers that tag log lines with the current apply run ID. A
// no-op logger is provided for tests and for library callers that do not
// care about output.
package logging
