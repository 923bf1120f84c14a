package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DatabaseConfig controls where the SQLite file lives.
// An empty path means the default ~/.jotdeck/jotdeck.db.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// CleanupConfig controls the trash retention window
type CleanupConfig struct {
	RetentionDays int `yaml:"retention_days"`
}

// TagConfig controls tag suggestion behavior
type TagConfig struct {
	SuggestLimit int `yaml:"suggest_limit"`
}

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	Cleanup     CleanupConfig  `yaml:"cleanup"`
	Tags        TagConfig      `yaml:"tags"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// Default returns a config with every field at its default value
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := &Config{}
		config.applyDefaults()
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := &Config{}
		config.applyDefaults()
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "jotdeck", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "jotdeck", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Cleanup.RetentionDays <= 0 {
		c.Cleanup.RetentionDays = 30
	}
	if c.Tags.SuggestLimit <= 0 {
		c.Tags.SuggestLimit = 10
	}
	c.ColorScheme.ApplyDefaults()
}
