package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile,
// then via DISCOVERPATH_* environment variables.
// Missing keys are left at their default values.
type Config struct {
	Log     LogConfig     `json:"log"`
	UI      UIConfig      `json:"ui"`
	Resolve ResolveConfig `json:"resolve"`
}

type LogConfig struct {
	Level  string `json:"level" env:"DISCOVERPATH_LOG_LEVEL"`   // Default: "warn"
	Format string `json:"format" env:"DISCOVERPATH_LOG_FORMAT"` // Default: "console"
}

type UIConfig struct {
	// Colors (lipgloss ANSI 256 codes)
	ColorPrimary string `json:"color_primary" env:"DISCOVERPATH_COLOR_PRIMARY"` // Default: "63"
	ColorError   string `json:"color_error" env:"DISCOVERPATH_COLOR_ERROR"`     // Default: "196"
	ColorFaint   string `json:"color_faint" env:"DISCOVERPATH_COLOR_FAINT"`     // Default: "241"

	// Error reports
	Markdown     bool   `json:"markdown" env:"DISCOVERPATH_MARKDOWN"`           // Default: true
	GlamourStyle string `json:"glamour_style" env:"DISCOVERPATH_GLAMOUR_STYLE"` // Default: "auto"
}

type ResolveConfig struct {
	// Backend selects the listing capability: "os" or "billy".
	Backend string `json:"backend" env:"DISCOVERPATH_BACKEND"` // Default: "os"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		UI: UIConfig{
			ColorPrimary: "63",
			ColorError:   "196",
			ColorFaint:   "241",
			Markdown:     true,
			GlamourStyle: "auto",
		},
		Resolve: ResolveConfig{
			Backend: "os",
		},
	}
}
