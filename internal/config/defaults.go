package config

const (
	defaultBaseDir        = "."
	defaultStateDir       = "~/.local/share/orgplan"
	defaultDirMode        = "0755"
	defaultFileMode       = "0644"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultConfigLocation = "~/.config/orgplan/config.toml"
	projectConfigName     = "orgplan.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Plan: Plan{
			BaseDir:        defaultBaseDir,
			IncludeFastAPI: true,
			IncludeNFT:     true,
		},
		Apply: Apply{
			DirMode:       defaultDirMode,
			FileMode:      defaultFileMode,
			RecordHistory: true,
		},
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
