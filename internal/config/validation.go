package config

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// LogLevels lists the accepted log.level values.
var LogLevels = []string{
	zerolog.LevelDebugValue,
	zerolog.LevelInfoValue,
	zerolog.LevelWarnValue,
	zerolog.LevelErrorValue,
}

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Log validation
	if !slices.Contains(LogLevels, c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level %q must be one of %v", c.Log.Level, LogLevels))
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		errs = append(errs, "log.format must be one of console, json")
	}

	// UI validation
	if c.UI.ColorPrimary == "" {
		errs = append(errs, "ui.color_primary must not be empty")
	}
	if c.UI.ColorError == "" {
		errs = append(errs, "ui.color_error must not be empty")
	}
	if c.UI.ColorFaint == "" {
		errs = append(errs, "ui.color_faint must not be empty")
	}
	if c.UI.Markdown && c.UI.GlamourStyle == "" {
		errs = append(errs, "ui.glamour_style must be set when ui.markdown is enabled")
	}

	// Resolve validation
	switch c.Resolve.Backend {
	case "os", "billy":
	default:
		errs = append(errs, "resolve.backend must be one of os, billy")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
