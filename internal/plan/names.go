package plan

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidName reports a folder or file name that is not a single path segment.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidBasePath reports an unusable plan base path.
	ErrInvalidBasePath = errors.New("invalid base path")
)

// ValidateName checks that name is a single path segment: non-empty, not "."
// or "..", free of separators and NUL bytes, and not absolute.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidName, name)
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidName, name)
	}
	return nil
}

func validateBasePath(base string) (string, error) {
	if strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidBasePath)
	}
	if strings.ContainsRune(base, 0) {
		return "", fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidBasePath, base)
	}
	return filepath.Clean(base), nil
}
