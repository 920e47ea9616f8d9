// Package config loads, normalizes, and validates orgplan configuration.
//
// It supplies defaults for the plan builder, the applier and logging, expands
// user paths (including tilde shortcuts), reads TOML files, and honours
// environment fallbacks such as ORGPLAN_BASE_DIR. Always obtain settings
// through Load so callers receive expanded paths and field-qualified
// validation errors.
package config
