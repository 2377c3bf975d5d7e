// Package config loads the application configuration from an optional
// config file and TCTALLY_* environment variables, with defaults for
// everything. The calculator core itself takes no configuration; these
// knobs only select which session the CLI opens.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	// DataDir holds the database and the session lock file.
	DataDir string `mapstructure:"data_dir"`
	// User is the id the per-user documents are keyed by.
	User string `mapstructure:"user"`
	// Mode is the default calculator mode, "simple" or "pro".
	Mode string `mapstructure:"mode"`
	// StrictTime rejects the "00:00" picker placeholder when true.
	StrictTime bool `mapstructure:"strict_time"`
	// Verbose raises the log level from warn to debug.
	Verbose bool `mapstructure:"verbose"`
}

// DBPath returns the SQLite database path under the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "tctally.db")
}

// LockPath returns the single-session lock file path.
func (c *Config) LockPath() string {
	return filepath.Join(c.DataDir, "tctally.lock")
}

// Load reads configuration from ~/.tctally/config.toml (if present) and
// the TCTALLY_* environment, applying defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()
	return load(v, "")
}

// LoadFrom reads configuration from an explicit file path.
func LoadFrom(path string) (*Config, error) {
	return load(viper.New(), path)
}

func load(v *viper.Viper, path string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	defaultDir := filepath.Join(home, ".tctally")

	v.SetDefault("data_dir", defaultDir)
	v.SetDefault("user", "default")
	v.SetDefault("mode", "simple")
	v.SetDefault("strict_time", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("TCTALLY")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(defaultDir)
		if err := v.ReadInConfig(); err != nil {
			// Missing config file is fine; anything else is not.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &c, nil
}
