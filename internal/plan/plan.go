package plan

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
)

// Plan is a base path plus the ordered top-level folders to lay out under it.
// Metadata is free-form annotation and is never interpreted by the applier.
type Plan struct {
	basePath string
	folders  []FolderSpec
	metadata map[string]string
}

// New validates the base path and copies folders and metadata into a Plan.
func New(basePath string, folders []FolderSpec, metadata map[string]string) (Plan, error) {
	base, err := validateBasePath(basePath)
	if err != nil {
		return Plan{}, err
	}
	for i, f := range folders {
		if f.name == "" {
			return Plan{}, fmt.Errorf("folders[%d]: %w: uninitialized folder", i, ErrInvalidName)
		}
	}
	return Plan{
		basePath: base,
		folders:  slices.Clip(slices.Clone(folders)),
		metadata: maps.Clone(metadata),
	}, nil
}

// BasePath returns the cleaned directory the plan is rooted at.
func (p Plan) BasePath() string { return p.basePath }

// Folders returns a copy of the top-level folders.
func (p Plan) Folders() []FolderSpec { return slices.Clone(p.folders) }

// Metadata returns a copy of the plan annotations.
func (p Plan) Metadata() map[string]string {
	out := make(map[string]string, len(p.metadata))
	maps.Copy(out, p.metadata)
	return out
}

// MetadataKeys returns the annotation keys in sorted order.
func (p Plan) MetadataKeys() []string {
	return slices.Sorted(maps.Keys(p.metadata))
}

// Rebase returns a copy of the plan rooted at basePath.
func (p Plan) Rebase(basePath string) (Plan, error) {
	return New(basePath, p.folders, p.metadata)
}

// Folder returns the top-level folder with the given name.
func (p Plan) Folder(name string) (FolderSpec, bool) {
	for _, f := range p.folders {
		if f.name == name {
			return f, true
		}
	}
	return FolderSpec{}, false
}

// CountFolders returns the total number of folder nodes in the plan.
func (p Plan) CountFolders() int {
	n := 0
	for _, f := range p.folders {
		n += f.CountFolders()
	}
	return n
}

// CountFiles returns the total number of files declared in the plan.
func (p Plan) CountFiles() int {
	n := 0
	for _, f := range p.folders {
		n += f.CountFiles()
	}
	return n
}

// WalkFunc is called for every folder in pre-order with its path relative to
// the plan base.
type WalkFunc func(rel string, f FolderSpec) error

// Walk visits every folder depth-first in declaration order. Returning an
// error from fn stops the walk.
func (p Plan) Walk(fn WalkFunc) error {
	for _, f := range p.folders {
		if err := walk(f.name, f, fn); err != nil {
			return err
		}
	}
	return nil
}

func walk(rel string, f FolderSpec, fn WalkFunc) error {
	if err := fn(rel, f); err != nil {
		return err
	}
	for _, child := range f.children {
		if err := walk(filepath.Join(rel, child.name), child, fn); err != nil {
			return err
		}
	}
	return nil
}
