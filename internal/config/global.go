package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/mix/config.yml.
type GlobalConfig struct {
	LibraryPath string `yaml:"library_path,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
	LogFormat   string `yaml:"log_format,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "mix"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/mix/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.LibraryPath != "" {
		cfg.LibraryPath = ExpandPath(cfg.LibraryPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetLibraryPath returns the configured default library from global config.
func GetLibraryPath() string {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return ""
	}
	return cfg.LibraryPath
}

// LogSettings returns the log level and format, with MIX_LOG_LEVEL and
// MIX_LOG_FORMAT taking precedence over the global config file.
func LogSettings() (level, format string) {
	if cfg, err := LoadGlobalConfig(); err == nil {
		level, format = cfg.LogLevel, cfg.LogFormat
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		format = v
	}
	return level, format
}

// HelpfulConfigMessage returns a helpful message when no library is found.
func HelpfulConfigMessage() string {
	configPath := GlobalConfigPath()
	return fmt.Sprintf(`No mixology library found.

Run 'mix init' in a directory to create one, then 'mix import <csv>'.

Tip: Create %s to set a default library:
  mkdir -p %s
  echo 'library_path: /path/to/your/library' > %s`,
		configPath,
		filepath.Dir(configPath),
		configPath)
}
