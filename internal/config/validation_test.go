package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Log(t *testing.T) {
	t.Run("Unknown Level Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Log.Level = "loud"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "log.level")
	})

	t.Run("Empty Level Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Log.Level = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "log.level")
	})

	t.Run("Accepted Levels Pass", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			cfg := DefaultConfig()
			cfg.Log.Level = level
			assert.NoError(t, cfg.Validate(), level)
		}
	})

	t.Run("Other Zerolog Levels Fail", func(t *testing.T) {
		for _, level := range []string{"trace", "fatal", "panic", "disabled"} {
			cfg := DefaultConfig()
			cfg.Log.Level = level
			err := cfg.Validate()
			assert.Error(t, err, level)
			assert.Contains(t, err.Error(), "log.level")
		}
	})

	t.Run("JSON Format Passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Log.Format = "json"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Unknown Format Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Log.Format = "xml"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
	})
}

func TestValidate_UI(t *testing.T) {
	t.Run("Empty Color Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.UI.ColorError = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "color_error")
	})

	t.Run("Markdown Without Style Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.UI.GlamourStyle = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "glamour_style")
	})

	t.Run("Plain Output Without Style Passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.UI.Markdown = false
		cfg.UI.GlamourStyle = ""
		assert.NoError(t, cfg.Validate())
	})
}

func TestValidate_Resolve(t *testing.T) {
	t.Run("Billy Backend Passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Resolve.Backend = "billy"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Unknown Backend Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Resolve.Backend = "s3"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "resolve.backend")
	})
}
