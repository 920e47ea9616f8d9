// Package apply materializes organization plans on the filesystem.
//
// Apply walks a plan depth-first in declaration order. Every folder and file
// is classified exactly once: it already existed, it was created, or (in dry
// run mode) it would be created. Existing entries are never modified and
// existing files are never opened for writing, so applying the same plan
// twice is safe. The first filesystem error stops the walk; whatever was
// processed before it stays on disk and in the Result.
//
// Apply takes no locks. Two concurrent applies against the same base path can
// both decide an entry is missing; directory creation tolerates that, and a
// file lost to the other writer is reported as existing.
package apply
