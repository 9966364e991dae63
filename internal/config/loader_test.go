package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configPath = "/home/user/.config/discoverpath/config.json"

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func withConfig(content string) *MockFileSystem {
	return &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{configPath: []byte(content)},
	}
}

var noEnv = map[string]string{}

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}
	loader := NewLoaderWithFS(fs, noEnv)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FullOverride_AllValuesReplaced(t *testing.T) {
	configJSON := `{
		"log": {"level": "debug", "format": "json"},
		"ui": {"color_primary": "99", "color_error": "160", "color_faint": "8", "markdown": false, "glamour_style": "dark"},
		"resolve": {"backend": "billy"}
	}`
	loader := NewLoaderWithFS(withConfig(configJSON), noEnv)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "99", cfg.UI.ColorPrimary)
	assert.Equal(t, "160", cfg.UI.ColorError)
	assert.False(t, cfg.UI.Markdown)
	assert.Equal(t, "dark", cfg.UI.GlamourStyle)
	assert.Equal(t, "billy", cfg.Resolve.Backend)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	loader := NewLoaderWithFS(withConfig(`{"log": {"level": "info"}}`), noEnv)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)     // Overridden
	assert.Equal(t, "console", cfg.Log.Format) // Default
	assert.Equal(t, "63", cfg.UI.ColorPrimary) // Default
	assert.Equal(t, "os", cfg.Resolve.Backend) // Default
}

func TestLoad_EmptyConfigFile_ReturnsDefaults(t *testing.T) {
	loader := NewLoaderWithFS(withConfig(`{}`), noEnv)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ExplicitFalse_OverridesDefault(t *testing.T) {
	loader := NewLoaderWithFS(withConfig(`{"ui": {"markdown": false}}`), noEnv)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.False(t, cfg.UI.Markdown)
	assert.Equal(t, "auto", cfg.UI.GlamourStyle)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	loader := NewLoaderWithFS(withConfig(`{"log": {"level": "info"}}`), map[string]string{
		"DISCOVERPATH_LOG_LEVEL": "debug",
		"DISCOVERPATH_BACKEND":   "billy",
		"DISCOVERPATH_MARKDOWN":  "false",
	})

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "billy", cfg.Resolve.Backend)
	assert.False(t, cfg.UI.Markdown)
}

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDirErr: errors.New("homeless"),
	}
	loader := NewLoaderWithFS(fs, noEnv)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// --- UNHAPPY PATH TESTS ---

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	loader := NewLoaderWithFS(withConfig(`{invalid json`), noEnv)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid")
}

func TestLoad_PermissionDenied_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}
	loader := NewLoaderWithFS(fs, noEnv)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestLoad_WrongJSONType_ReturnsError(t *testing.T) {
	loader := NewLoaderWithFS(withConfig(`["not", "an", "object"]`), noEnv)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_UnknownKey_ReturnsError(t *testing.T) {
	loader := NewLoaderWithFS(withConfig(`{"log": {"colour": "red"}}`), noEnv)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoad_WrongFieldType_ReturnsError(t *testing.T) {
	loader := NewLoaderWithFS(withConfig(`{"ui": {"markdown": "yes"}}`), noEnv)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidValue_FailsValidation(t *testing.T) {
	loader := NewLoaderWithFS(withConfig(`{"resolve": {"backend": "ftp"}}`), noEnv)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "resolve.backend")
}

func TestLoad_InvalidEnvValue_ReturnsError(t *testing.T) {
	loader := NewLoaderWithFS(withConfig(`{}`), map[string]string{"DISCOVERPATH_MARKDOWN": "maybe"})

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "environment")
}
