// Package config provides the example server's configuration management
// with support for TOML files, environment variable overrides, and
// configuration overlays.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/localshred/flauta/pkg/database"
	"github.com/localshred/flauta/pkg/logging"
)

const (
	// OverlayConfigPattern is the file name pattern for environment-specific
	// overlays, resolved relative to the base config file.
	OverlayConfigPattern = "config.%s.toml"

	// EnvServerEnv specifies the environment name for configuration overlays.
	EnvServerEnv = "FLAUTA_ENV"
)

var loggingEnv = &logging.Env{
	Level:  "FLAUTA_LOG_LEVEL",
	Format: "FLAUTA_LOG_FORMAT",
}

var databaseEnv = &database.Env{
	Host:     "FLAUTA_DATABASE_HOST",
	Port:     "FLAUTA_DATABASE_PORT",
	Name:     "FLAUTA_DATABASE_NAME",
	User:     "FLAUTA_DATABASE_USER",
	Password: "FLAUTA_DATABASE_PASSWORD",
}

// Config represents the root server configuration.
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Database database.Config `toml:"database"`
	Logging  logging.Config  `toml:"logging"`
	Limits   LimitsConfig    `toml:"limits"`
}

// Load reads and parses the configuration file at path and applies any
// environment-specific overlay next to it.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	if overlay := overlayPath(); overlay != "" {
		overlayCfg, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(overlayCfg)
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates
// the configuration.
func (c *Config) Finalize() error {
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Limits.Finalize(); err != nil {
		return fmt.Errorf("limits: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero
// values.
func (c *Config) Merge(overlay *Config) {
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Logging.Merge(&overlay.Logging)
	c.Limits.Merge(&overlay.Limits)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvServerEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
