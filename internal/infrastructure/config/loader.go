package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a new configuration manager. An empty configFile
// selects config.toml in the XDG config directory or the current directory.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".") // Current directory for development
	}

	// PANESET_ENGINE_POLICY, PANESET_LOGGING_LEVEL, ...
	v.SetEnvPrefix("PANESET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "PANESET_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PANESET_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PANESET_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PANESET_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.configFile == "" {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.path(), err)
	}

	path := m.path()
	if path == "" {
		return fmt.Errorf("failed to determine config file path")
	}
	if createErr := WriteConfigFile(DefaultConfig(), path); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			path,
			createErr,
		)
	}

	m.viper.SetConfigFile(path)
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// path returns the file the manager reads, or would create.
func (m *Manager) path() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	if m.configFile != "" {
		return m.configFile
	}
	path, err := GetConfigFile()
	if err != nil {
		return ""
	}
	return path
}

func normalizeConfig(config *Config) {
	config.Engine.Policy = strings.ToLower(strings.TrimSpace(config.Engine.Policy))
	if config.Engine.Policy == "" {
		config.Engine.Policy = defaultPolicy
	}

	switch strings.ToLower(strings.TrimSpace(config.Engine.Orientation)) {
	case "", "h", "horizontal":
		config.Engine.Orientation = "horizontal"
	case "v", "vertical":
		config.Engine.Orientation = "vertical"
	default:
		config.Engine.Orientation = strings.ToLower(strings.TrimSpace(config.Engine.Orientation))
	}

	switch level := strings.ToLower(strings.TrimSpace(config.Logging.Level)); level {
	case "":
		config.Logging.Level = defaultLogLevel
	case "warning":
		config.Logging.Level = "warn"
	case "off":
		config.Logging.Level = "disabled"
	default:
		config.Logging.Level = level
	}

	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	p := &config.Appearance.Palette
	for _, c := range []*string{&p.Accent, &p.Pane, &p.Handle, &p.Text, &p.Muted, &p.Warning} {
		*c = strings.TrimSpace(*c)
	}

	config.ScenarioDir = strings.TrimSpace(config.ScenarioDir)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setEngineDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.viper.SetDefault("scenario_dir", defaults.ScenarioDir)
}

func (m *Manager) setEngineDefaults(defaults *Config) {
	m.viper.SetDefault("engine.handle_size", defaults.Engine.HandleSize)
	m.viper.SetDefault("engine.padding", defaults.Engine.Padding)
	m.viper.SetDefault("engine.inset", defaults.Engine.Inset)
	m.viper.SetDefault("engine.trailing_handles", defaults.Engine.TrailingHandles)
	m.viper.SetDefault("engine.policy", defaults.Engine.Policy)
	m.viper.SetDefault("engine.orientation", defaults.Engine.Orientation)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.palette.accent", defaults.Appearance.Palette.Accent)
	m.viper.SetDefault("appearance.palette.pane", defaults.Appearance.Palette.Pane)
	m.viper.SetDefault("appearance.palette.handle", defaults.Appearance.Palette.Handle)
	m.viper.SetDefault("appearance.palette.text", defaults.Appearance.Palette.Text)
	m.viper.SetDefault("appearance.palette.muted", defaults.Appearance.Palette.Muted)
	m.viper.SetDefault("appearance.palette.warning", defaults.Appearance.Palette.Warning)
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init(configFile string) error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager(configFile)
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
// This is useful for accessing watcher functionality.
func GetManager() *Manager {
	return globalManager
}
