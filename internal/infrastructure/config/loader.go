package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForDir(configDir)
}

// NewManagerForDir creates a configuration manager that reads config.toml from dir.
func NewManagerForDir(dir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("FINDPOPUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "FINDPOPUP_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FINDPOPUP_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FINDPOPUP_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FINDPOPUP_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		dir:       dir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.decodeLocked()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.dir, configFileName)
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.dir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decodeLocked unmarshals, normalizes and validates. Must hold m.mu for write.
func (m *Manager) decodeLocked() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func normalizeConfig(config *Config) {
	config.Popup.Title = strings.TrimSpace(config.Popup.Title)
	if config.Popup.Title == "" {
		config.Popup.Title = defaultPopupTitle
	}
	if config.Popup.MinWidth == 0 {
		config.Popup.MinWidth = defaultMinWidth
	}
	if config.Popup.MinHeight == 0 {
		config.Popup.MinHeight = defaultMinHeight
	}
	if config.Popup.DefaultWidth < config.Popup.MinWidth {
		config.Popup.DefaultWidth = config.Popup.MinWidth
	}
	if config.Popup.DefaultHeight < config.Popup.MinHeight {
		config.Popup.DefaultHeight = config.Popup.MinHeight
	}

	if config.Dismiss.HistorySize == 0 {
		config.Dismiss.HistorySize = defaultHistorySize
	}

	config.ThemeOverlay.ActionID = strings.TrimSpace(config.ThemeOverlay.ActionID)
	config.ThemeOverlay.DBusName = strings.TrimSpace(config.ThemeOverlay.DBusName)

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

	switch format := strings.ToLower(strings.TrimSpace(config.Logging.Format)); format {
	case "", "text", "pretty":
		config.Logging.Format = defaultLogFormat
	default:
		config.Logging.Format = format
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, configFileName)
}

// createDefaultConfig writes the defaults as TOML.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(filepath.Join(m.dir, configFileName)); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setPopupDefaults(defaults)
	m.setDismissDefaults(defaults)
	m.setThemeOverlayDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setPopupDefaults(defaults *Config) {
	m.viper.SetDefault("popup.title", defaults.Popup.Title)
	m.viper.SetDefault("popup.min_width", defaults.Popup.MinWidth)
	m.viper.SetDefault("popup.min_height", defaults.Popup.MinHeight)
	m.viper.SetDefault("popup.default_width", defaults.Popup.DefaultWidth)
	m.viper.SetDefault("popup.default_height", defaults.Popup.DefaultHeight)
	m.viper.SetDefault("popup.content_url", defaults.Popup.ContentURL)
}

func (m *Manager) setDismissDefaults(defaults *Config) {
	m.viper.SetDefault("dismiss.on_focus_loss", defaults.Dismiss.OnFocusLoss)
	m.viper.SetDefault("dismiss.on_click_outside", defaults.Dismiss.OnClickOutside)
	m.viper.SetDefault("dismiss.on_pointer_leave", defaults.Dismiss.OnPointerLeave)
	m.viper.SetDefault("dismiss.history_size", defaults.Dismiss.HistorySize)
}

func (m *Manager) setThemeOverlayDefaults(defaults *Config) {
	m.viper.SetDefault("theme_overlay.action_id", defaults.ThemeOverlay.ActionID)
	m.viper.SetDefault("theme_overlay.dbus_name", defaults.ThemeOverlay.DBusName)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
