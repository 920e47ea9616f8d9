package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"orgplan/internal/plan"
)

//go:embed sample_config.toml
var sampleConfig string

// Plan contains the default plan builder inputs.
type Plan struct {
	BaseDir        string   `toml:"base_dir"`
	Libraries      []string `toml:"libraries"`
	IncludeFastAPI bool     `toml:"include_fastapi"`
	IncludeNFT     bool     `toml:"include_nft"`
	// PlanFile points at an HCL layout used instead of the built-in one.
	PlanFile string `toml:"plan_file"`
}

// Apply contains settings for materializing plans.
type Apply struct {
	DirMode       string `toml:"dir_mode"`
	FileMode      string `toml:"file_mode"`
	RecordHistory bool   `toml:"record_history"`
}

// Paths contains state locations.
type Paths struct {
	StateDir string `toml:"state_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for orgplan.
type Config struct {
	Plan    Plan    `toml:"plan"`
	Apply   Apply   `toml:"apply"`
	Paths   Paths   `toml:"paths"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigLocation)
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded. The string result is the resolved
// config path and the bool reports whether that file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates the state directory.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.StateDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.StateDir, err)
	}
	return nil
}

// HistoryPath is the SQLite database recording apply runs.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.StateDir, "history.db")
}

// LogPath is the log file written next to the history database.
func (c *Config) LogPath() string {
	return filepath.Join(c.Paths.StateDir, "orgplan.log")
}

// LockDir holds advisory lock files for exclusive applies.
func (c *Config) LockDir() string {
	return filepath.Join(c.Paths.StateDir, "locks")
}

// BuildOptions maps the [plan] section onto builder options.
func (c *Config) BuildOptions() plan.BuildOptions {
	return plan.BuildOptions{
		LibraryNames:   append([]string(nil), c.Plan.Libraries...),
		IncludeFastAPI: c.Plan.IncludeFastAPI,
		IncludeNFT:     c.Plan.IncludeNFT,
	}
}

// DirMode returns apply.dir_mode as a file mode.
func (c *Config) DirMode() os.FileMode {
	mode, _ := parseMode(c.Apply.DirMode)
	return mode
}

// FileMode returns apply.file_mode as a file mode.
func (c *Config) FileMode() os.FileMode {
	mode, _ := parseMode(c.Apply.FileMode)
	return mode
}

func parseMode(value string) (os.FileMode, error) {
	u, err := strconv.ParseUint(strings.TrimSpace(value), 8, 32)
	if err != nil {
		return 0, err
	}
	if u > 0o777 {
		return 0, fmt.Errorf("mode %q exceeds 0777", value)
	}
	return os.FileMode(u), nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
