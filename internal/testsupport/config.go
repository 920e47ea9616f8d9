package testsupport

import (
	"path/filepath"
	"testing"

	"orgplan/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	cfg *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Plan.BaseDir = filepath.Join(base, "layout")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")

	builder := &configBuilder{cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithoutHistory disables run recording.
func WithoutHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Apply.RecordHistory = false
	}
}
