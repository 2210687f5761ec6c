package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

// EnvMaxBodySize overrides the maximum request body size.
const EnvMaxBodySize = "FLAUTA_MAX_BODY_SIZE"

// LimitsConfig contains request limit configuration.
type LimitsConfig struct {
	MaxBodySize    string `toml:"max_body_size"`
	maxBodySizeVal int64
}

// MaxBodySizeBytes returns the parsed maximum request body size in bytes.
func (c *LimitsConfig) MaxBodySizeBytes() int64 {
	return c.maxBodySizeVal
}

// Finalize applies defaults, loads environment overrides, and validates
// the limits configuration.
func (c *LimitsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero
// values.
func (c *LimitsConfig) Merge(overlay *LimitsConfig) {
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
}

func (c *LimitsConfig) loadDefaults() {
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *LimitsConfig) loadEnv() {
	if v := os.Getenv(EnvMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
}

func (c *LimitsConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	c.maxBodySizeVal = size
	return nil
}
