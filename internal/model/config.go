package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultMaxNameLength is the maximum accepted length for collection and
// entry names when the config does not override it.
const DefaultMaxNameLength = 100

// DatabaseConfig holds storage location settings.
type DatabaseConfig struct {
	// Path is the SQLite database file location.
	Path string `mapstructure:"path" yaml:"path"`
}

// EngineConfig is the top-level engine configuration.
type EngineConfig struct {
	// MaxNameLength bounds validated names (collections, entries).
	MaxNameLength int `mapstructure:"max_name_length" yaml:"max_name_length"`

	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/notebook/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "notebook", "config.yaml")
}

// defaultDatabasePath returns the default SQLite file location next to the
// config file.
func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "notebook.db")
	}
	return filepath.Join(home, ".config", "notebook", "notebook.db")
}

// defaultEngineConfig returns a sensible default configuration.
func defaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		MaxNameLength: DefaultMaxNameLength,
		Database: DatabaseConfig{
			Path: defaultDatabasePath(),
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*EngineConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("max_name_length", DefaultMaxNameLength)
	v.SetDefault("database.path", defaultDatabasePath())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultEngineConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultEngineConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultEngineConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.MaxNameLength <= 0 {
		cfg.MaxNameLength = DefaultMaxNameLength
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *EngineConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("max_name_length", cfg.MaxNameLength)
	v.Set("database", cfg.Database)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
