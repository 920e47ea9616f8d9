package plan

import (
	"fmt"
	"slices"
)

// FolderSpec describes one folder: its name, an optional description, the
// folders nested below it and the empty placeholder files created inside it.
//
// The zero value is not a valid spec; use NewFolder or MustFolder.
type FolderSpec struct {
	name        string
	description string
	children    []FolderSpec
	files       []string
}

// FolderOption customizes a FolderSpec during construction.
type FolderOption func(*FolderSpec)

// WithDescription attaches a display-only description.
func WithDescription(description string) FolderOption {
	return func(f *FolderSpec) {
		f.description = description
	}
}

// WithChildren appends child folders in order.
func WithChildren(children ...FolderSpec) FolderOption {
	return func(f *FolderSpec) {
		f.children = append(f.children, children...)
	}
}

// WithFiles appends placeholder file names in order.
func WithFiles(files ...string) FolderOption {
	return func(f *FolderSpec) {
		f.files = append(f.files, files...)
	}
}

// NewFolder validates and constructs a FolderSpec. Input slices are copied.
func NewFolder(name string, opts ...FolderOption) (FolderSpec, error) {
	if err := ValidateName(name); err != nil {
		return FolderSpec{}, fmt.Errorf("folder: %w", err)
	}
	f := FolderSpec{name: name}
	for _, opt := range opts {
		opt(&f)
	}
	for _, file := range f.files {
		if err := ValidateName(file); err != nil {
			return FolderSpec{}, fmt.Errorf("folder %q: file: %w", name, err)
		}
	}
	for _, child := range f.children {
		if child.name == "" {
			return FolderSpec{}, fmt.Errorf("folder %q: %w: uninitialized child", name, ErrInvalidName)
		}
	}
	f.children = slices.Clip(slices.Clone(f.children))
	f.files = slices.Clip(slices.Clone(f.files))
	return f, nil
}

// MustFolder is NewFolder for static layouts; it panics on invalid input.
func MustFolder(name string, opts ...FolderOption) FolderSpec {
	f, err := NewFolder(name, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the folder's path segment.
func (f FolderSpec) Name() string { return f.name }

// Description returns the display description, or "" when none was set.
func (f FolderSpec) Description() string { return f.description }

// Children returns a copy of the nested folders.
func (f FolderSpec) Children() []FolderSpec { return slices.Clone(f.children) }

// Files returns a copy of the placeholder file names.
func (f FolderSpec) Files() []string { return slices.Clone(f.files) }

// IsLeaf reports whether the folder has no child folders. Leaf folders may
// still carry files.
func (f FolderSpec) IsLeaf() bool { return len(f.children) == 0 }

// Equal reports whether two specs describe the same subtree.
func (f FolderSpec) Equal(other FolderSpec) bool {
	if f.name != other.name || f.description != other.description {
		return false
	}
	if !slices.Equal(f.files, other.files) {
		return false
	}
	return slices.EqualFunc(f.children, other.children, FolderSpec.Equal)
}

// CountFolders returns the number of folder nodes in the subtree, including f.
func (f FolderSpec) CountFolders() int {
	n := 1
	for _, child := range f.children {
		n += child.CountFolders()
	}
	return n
}

// CountFiles returns the number of files declared anywhere in the subtree.
func (f FolderSpec) CountFiles() int {
	n := len(f.files)
	for _, child := range f.children {
		n += child.CountFiles()
	}
	return n
}
