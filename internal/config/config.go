// Package config loads the application configuration with Viper.
// Values resolve from config.yaml in the config directory, overridden by
// BASECAMP_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "BASECAMP"

	// Config keys.
	keyDatabasePath      = "database_path"
	keyLogLevel          = "log_level"
	keySuperuserEmail    = "superuser_email"
	keySuperuserPassword = "superuser_password"
)

// Config is the resolved application configuration.
type Config struct {
	// DatabasePath is the SQLite database file.
	DatabasePath string
	// LogLevel is a zerolog level name (trace..panic).
	LogLevel string
	// SuperuserEmail and SuperuserPassword seed the first account when
	// the user table is empty. Both empty disables seeding.
	SuperuserEmail    string
	SuperuserPassword string
}

// DefaultDir returns the default config directory, ~/.basecamp.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".basecamp"), nil
}

// Load reads the configuration from dir, falling back to defaults when
// no config file exists. A missing config.yaml is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyDatabasePath, filepath.Join(dir, "basecamp.db"))
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keySuperuserEmail, "")
	v.SetDefault(keySuperuserPassword, "")

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &Config{
		DatabasePath:      v.GetString(keyDatabasePath),
		LogLevel:          v.GetString(keyLogLevel),
		SuperuserEmail:    v.GetString(keySuperuserEmail),
		SuperuserPassword: v.GetString(keySuperuserPassword),
	}, nil
}

// LoadDefault loads the configuration from the default directory.
func LoadDefault() (*Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return Load(dir)
}
