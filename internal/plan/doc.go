// Package plan describes folder organization plans as immutable value trees.
//
// A Plan is a base path plus an ordered list of top-level FolderSpec nodes and
// free-form metadata. FolderSpec values are validated and deep-copied when they
// are constructed, so a plan handed to the applier or renderer cannot be
// changed behind their backs. Build produces the default layout (mirrored
// libraries, workflows, APIs, infrastructure and optional digital assets).
//
// This package never touches the filesystem; see internal/apply for that.
package plan
