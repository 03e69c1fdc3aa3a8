// Package config loads the settings of the mipmap tools from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the generator and the verifier.
// Command line flags take precedence over these values.
type Config struct {
	Quality         float32       `env:"MIPMAP_QUALITY" envDefault:"90"`
	Output          string        `env:"MIPMAP_OUTPUT" envDefault:"./res"`
	LogLevel        string        `env:"MIPMAP_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"MIPMAP_LOG_FORMAT" envDefault:"text"`
	RootMarker      string        `env:"MIPMAP_ROOT_MARKER" envDefault:"frontend_kotlin"`
	ResPath         string        `env:"MIPMAP_RES_PATH" envDefault:"frontend_kotlin/app/src/main/res"`
	Strict          bool          `env:"MIPMAP_STRICT" envDefault:"false"`
	DownloadTimeout time.Duration `env:"MIPMAP_DOWNLOAD_TIMEOUT" envDefault:"30s"`
}

// Load parses the configuration from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the configuration from the provided variables instead of
// the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the value ranges.
func (c *Config) Validate() error {
	if c.Quality <= 0 || c.Quality > 100 {
		return fmt.Errorf("quality must be in the (0, 100] range, got %v", c.Quality)
	}
	if c.DownloadTimeout < 0 {
		return fmt.Errorf("download timeout must not be negative, got %v", c.DownloadTimeout)
	}
	return nil
}
