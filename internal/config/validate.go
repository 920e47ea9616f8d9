package config

import (
	"fmt"

	"orgplan/internal/plan"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePlan(); err != nil {
		return err
	}
	if err := c.validateApply(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePlan() error {
	for i, name := range c.Plan.Libraries {
		if err := plan.ValidateName(name); err != nil {
			return fmt.Errorf("plan.libraries[%d]: %w", i, err)
		}
	}
	return nil
}

func (c *Config) validateApply() error {
	if _, err := parseMode(c.Apply.DirMode); err != nil {
		return fmt.Errorf("apply.dir_mode: invalid octal mode %q: %w", c.Apply.DirMode, err)
	}
	if _, err := parseMode(c.Apply.FileMode); err != nil {
		return fmt.Errorf("apply.file_mode: invalid octal mode %q: %w", c.Apply.FileMode, err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
