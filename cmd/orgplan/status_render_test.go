package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"orgplan/internal/apply"
	"orgplan/internal/preflight"
)

func TestStatusLineRenderNoColor(t *testing.T) {
	got := statusLine{label: "Base directory", kind: statusError, message: "missing"}.render(false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Base directory:", "[ERROR] missing")
	if got != want {
		t.Fatalf("render mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestStatusLineRenderWithColor(t *testing.T) {
	got := statusLine{label: "Base directory", kind: statusOK, message: "ok"}.render(true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestPreflightStatusLines(t *testing.T) {
	results := []preflight.Result{
		{Name: "Base directory", Passed: true, Detail: "/srv (read/write ok)"},
		{Name: "State directory", Passed: false, Detail: "/state (error: is not a directory)"},
	}
	lines := preflightStatusLines(results)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].kind != statusOK || lines[1].kind != statusError {
		t.Fatalf("unexpected kinds: %+v", lines)
	}
	summary := lines[2]
	if summary.kind != statusError || summary.message != "1 of 2 checks failed" {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	passing := preflightStatusLines(results[:1])
	if got := passing[len(passing)-1]; got.kind != statusOK || got.message != "all 1 checks passed" {
		t.Fatalf("unexpected passing summary: %+v", got)
	}
}

func TestRenderStatusBlock(t *testing.T) {
	block := renderStatusBlock("Preflight", []statusLine{{label: "Config", kind: statusInfo, message: "x"}}, false)
	if len(block) != 3 {
		t.Fatalf("expected header, rule and one row, got %q", block)
	}
	if block[0] != "== Preflight ==" || block[1] != strings.Repeat("-", len(block[0])) {
		t.Fatalf("unexpected header: %q", block[:2])
	}
	if !strings.Contains(block[2], "[INFO] x") {
		t.Fatalf("unexpected row: %q", block[2])
	}
}

func TestShouldColorizeBuffer(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatalf("buffers are never terminals")
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := categoryLabel(apply.OutcomeExisting); got != "Existing" {
		t.Fatalf("categoryLabel = %q", got)
	}
}

func TestApplyLockPathIsStablePerBase(t *testing.T) {
	setupCLITestEnv(t)
	cfg := newCommandContext(nil).configValue()
	if cfg == nil {
		t.Fatalf("expected default config")
	}
	a := applyLockPath(cfg, "/srv/work")
	if a != applyLockPath(cfg, "/srv/work/") {
		t.Fatalf("expected trailing slash to map to the same lock")
	}
	if a == applyLockPath(cfg, "/srv/other") {
		t.Fatalf("expected distinct lock per base")
	}
}
