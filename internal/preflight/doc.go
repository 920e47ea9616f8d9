// Package preflight provides readiness checks for the filesystem paths an
// apply is about to touch.
//
// Checks are advisory. The CLI "check" command prints them, and "apply" logs a
// warning when one fails, but the applier still runs and surfaces the real
// filesystem error if creation is impossible.
package preflight
