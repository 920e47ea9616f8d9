package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckBaseDir verifies that the plan base path can be created or written to.
func CheckBaseDir(path string) Result {
	return CheckBaseDirNamed("Base directory", path)
}

// CheckBaseDirNamed is CheckBaseDir with a custom label. A missing directory
// passes when its nearest existing ancestor is a writable directory, since
// the applier creates missing parents.
func CheckBaseDirNamed(name, path string) Result {
	if path == "" {
		return Result{Name: name, Detail: "not set"}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}

	ancestor := abs
	for {
		_, err := os.Stat(ancestor)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat %s: %v)", abs, ancestor, err)}
		}
		parent := filepath.Dir(ancestor)
		if parent == ancestor {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing ancestor)", abs)}
		}
		ancestor = parent
	}

	result := CheckDirectoryAccess(name, ancestor)
	if result.Passed && ancestor != abs {
		result.Detail = fmt.Sprintf("%s (will be created under %s)", abs, ancestor)
	}
	return result
}
