// Package main hosts the orgplan CLI entrypoint and command graph.
//
// The Cobra command tree resolves a plan (built-in layout or an HCL layout
// file), renders it, applies it to disk, and records each apply in the
// history database. Configuration loading and logger construction live in
// the shared command context so subcommands only deal with presentation.
package main
