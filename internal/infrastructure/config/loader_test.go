package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
}

func TestSetEngineDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 4, mgr.viper.GetInt("engine.handle_size"))
	assert.Equal(t, "slinky", mgr.viper.GetString("engine.policy"))
	assert.Equal(t, "horizontal", mgr.viper.GetString("engine.orientation"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	mgr, err := NewManager(path)
	require.NoError(t, err)

	// Act
	require.NoError(t, mgr.Load())

	// Assert
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestManager_LoadReadsAndNormalizesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[engine]
handle_size = 2
inset = 1
policy = " Give-Take "
orientation = "v"

[logging]
level = "WARNING"
`)

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 2, cfg.Engine.HandleSize)
	assert.Equal(t, 1, cfg.Engine.Inset)
	assert.Equal(t, "give-take", cfg.Engine.Policy)
	assert.Equal(t, "vertical", cfg.Engine.Orientation)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "missing keys fall back to defaults")
	assert.Equal(t, defaultAccentColor, cfg.Appearance.Palette.Accent)
}

func TestManager_LoadEnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[engine]\ninset = 1\n")
	t.Setenv("PANESET_ENGINE_INSET", "3")
	t.Setenv("PANESET_LOG_LEVEL", "debug")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 3, cfg.Engine.Inset)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[engine]
handle_size = -2
policy = "accordion"
`)

	mgr, err := NewManager(path)
	require.NoError(t, err)
	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine.handle_size")
	assert.Contains(t, err.Error(), "engine.policy")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[engine\nhandle_size = ")

	mgr, err := NewManager(path)
	require.NoError(t, err)

	assert.Error(t, mgr.Load())
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[engine]\npolicy = \"slinky\"\n")
	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []*Config
	mgr.OnConfigChange(func(c *Config) { got = append(got, c) })

	// Act
	writeFile(t, path, "[engine]\npolicy = \"spreadsheet\"\n")
	mgr.handleChange(fsnotify.Event{Name: path, Op: fsnotify.Write})

	// Assert
	require.Len(t, got, 1)
	assert.Equal(t, "spreadsheet", got[0].Engine.Policy)
	assert.Equal(t, "spreadsheet", mgr.Get().Engine.Policy)
}

func TestManager_InvalidReloadKeepsPreviousConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[engine]\npolicy = \"slinky\"\n")
	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	writeFile(t, path, "[engine]\npolicy = \"accordion\"\n")
	mgr.handleChange(fsnotify.Event{Name: path, Op: fsnotify.Write})

	assert.False(t, called)
	assert.Equal(t, "slinky", mgr.Get().Engine.Policy)
}

func TestNormalizeConfig_EmptyValuesGetDefaults(t *testing.T) {
	cfg := &Config{}

	normalizeConfig(cfg)

	assert.Equal(t, "slinky", cfg.Engine.Policy)
	assert.Equal(t, "horizontal", cfg.Engine.Orientation)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}
