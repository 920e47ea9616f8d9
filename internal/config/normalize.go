package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePlan(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeApply()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePlan() error {
	if value, ok := os.LookupEnv("ORGPLAN_BASE_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Plan.BaseDir = value
	}
	if strings.TrimSpace(c.Plan.BaseDir) == "" {
		c.Plan.BaseDir = defaultBaseDir
	}
	var err error
	if c.Plan.BaseDir, err = expandPath(strings.TrimSpace(c.Plan.BaseDir)); err != nil {
		return fmt.Errorf("plan.base_dir: %w", err)
	}
	if strings.TrimSpace(c.Plan.PlanFile) != "" {
		if c.Plan.PlanFile, err = expandPath(strings.TrimSpace(c.Plan.PlanFile)); err != nil {
			return fmt.Errorf("plan.plan_file: %w", err)
		}
	}
	libraries := make([]string, 0, len(c.Plan.Libraries))
	for _, name := range c.Plan.Libraries {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			libraries = append(libraries, trimmed)
		}
	}
	c.Plan.Libraries = libraries
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	var err error
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeApply() {
	c.Apply.DirMode = strings.TrimSpace(c.Apply.DirMode)
	if c.Apply.DirMode == "" {
		c.Apply.DirMode = defaultDirMode
	}
	c.Apply.FileMode = strings.TrimSpace(c.Apply.FileMode)
	if c.Apply.FileMode == "" {
		c.Apply.FileMode = defaultFileMode
	}
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("ORGPLAN_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
