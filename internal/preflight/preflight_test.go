package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"orgplan/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	result := CheckDirectoryAccess("test", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("test", f); result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckBaseDirMissingUsesAncestor(t *testing.T) {
	root := t.TempDir()
	result := CheckBaseDir(filepath.Join(root, "a", "b", "c"))
	if !result.Passed {
		t.Fatalf("expected pass for creatable path, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "will be created under "+root) {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckBaseDirUnderFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckBaseDir(filepath.Join(f, "child")); result.Passed {
		t.Fatal("expected failure when base sits under a file")
	}
}

func TestCheckBaseDirEmpty(t *testing.T) {
	if result := CheckBaseDir(""); result.Passed {
		t.Fatal("expected failure for empty path")
	}
}

func TestRunAllIncludesStateDirWhenRecording(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	results := RunAll(cfg, cfg.Plan.BaseDir)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if failed := Failed(results); len(failed) != 0 {
		t.Fatalf("unexpected failures: %+v", failed)
	}

	noHistory := testsupport.NewConfig(t, testsupport.WithoutHistory())
	if results := RunAll(noHistory, noHistory.Plan.BaseDir); len(results) != 1 {
		t.Fatalf("expected only base dir check, got %d", len(results))
	}
}
