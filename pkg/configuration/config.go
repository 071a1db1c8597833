package configuration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ConfigVersion  = "1.0"
	ConfigDirName  = ".hexler"
	ConfigFileName = "config.json"
	LogFileName    = "testpattern.log"

	// EnvLogFile overrides the log file location.
	EnvLogFile = "HEXLER_LOG_FILE"
	// EnvJSONLogs switches the log file to JSON lines when set to "1".
	EnvJSONLogs = "HEXLER_JSON_LOGS"
)

// Config holds the settings of the testpattern tool. None of them affect the
// generated pattern; they only control diagnostics.
type Config struct {
	Version string    `json:"version"`
	Log     LogConfig `json:"log"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	File       string `json:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
	Compress   bool   `json:"compress"`
	JSON       bool   `json:"json,omitempty"`
}

// NewConfig creates a configuration with defaults
func NewConfig() *Config {
	return &Config{
		Version: ConfigVersion,
		Log: LogConfig{
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}

// GetConfigDir returns the configuration directory path. It does not create it.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ConfigDirName), nil
}

// GetConfigPath returns the full path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// Load reads the config file, falling back to defaults when it does not exist,
// and applies environment overrides.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	config := NewConfig()
	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if config.Version == "" {
		config.Version = ConfigVersion
	}
	config.applyEnv()

	if config.Log.File == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return nil, err
		}
		config.Log.File = filepath.Join(dir, LogFileName)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() {
	if path := os.Getenv(EnvLogFile); path != "" {
		c.Log.File = path
	}
	if os.Getenv(EnvJSONLogs) == "1" {
		c.Log.JSON = true
	}
}

// Validate checks the log rotation limits.
func (c *Config) Validate() error {
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log max size must be positive, got %d", c.Log.MaxSizeMB)
	}
	if c.Log.MaxBackups < 0 {
		return fmt.Errorf("log max backups cannot be negative, got %d", c.Log.MaxBackups)
	}
	if c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log max age cannot be negative, got %d", c.Log.MaxAgeDays)
	}
	return nil
}

// Save writes the configuration to the config file
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
