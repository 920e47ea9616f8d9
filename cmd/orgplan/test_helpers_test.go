package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	configPath string
	baseDir    string
	stateDir   string
}

// setupCLITestEnv writes a config that scaffolds a single "alpha" library
// without the digital assets branch.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	root := t.TempDir()
	homeDir := filepath.Join(root, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("ORGPLAN_BASE_DIR", "")
	t.Setenv("ORGPLAN_LOG_LEVEL", "")

	env := &cliTestEnv{
		configPath: filepath.Join(homeDir, ".config", "orgplan", "config.toml"),
		baseDir:    filepath.Join(root, "workspace"),
		stateDir:   filepath.Join(root, "state"),
	}
	content := fmt.Sprintf(`[plan]
base_dir = %q
libraries = ["alpha"]
include_nft = false

[paths]
state_dir = %q

[logging]
level = "warn"
`, env.baseDir, env.stateDir)
	if err := os.MkdirAll(filepath.Dir(env.configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
