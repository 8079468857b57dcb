package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/socialdeck/internal/flagx"
)

// Config holds runtime settings for the socialdeck CLI.
//
// Units: all durations are time.Duration. HTTPTimeout of zero means
// requests are bounded only by their context.
type Config struct {
	APIBaseURL          string
	OnlineCheckInterval time.Duration
	NotificationTTL     time.Duration
	HTTPTimeout         time.Duration
	StorageBackend      string
	StorageDSN          string
	LogLevel            string
	LogBackend          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3001"
	c.OnlineCheckInterval = 10 * time.Second
	c.NotificationTTL = 5 * time.Second
	c.HTTPTimeout = 0
	c.StorageBackend = "memory"
	c.StorageDSN = ""
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api base url %q: must be an absolute http(s) url", c.APIBaseURL)
	}
	if c.OnlineCheckInterval <= 0 {
		return errors.New("online check interval must be positive")
	}
	if c.NotificationTTL <= 0 {
		return errors.New("notification ttl must be positive")
	}
	if c.HTTPTimeout < 0 {
		return errors.New("http timeout must not be negative")
	}
	switch c.StorageBackend {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("storage backend %q: want memory or sqlite", c.StorageBackend)
	}
	switch c.LogBackend {
	case "slog", "zap":
	default:
		return fmt.Errorf("log backend %q: want slog or zap", c.LogBackend)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from a config file, the environment and command-line flags. Later sources
// take precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFileFlag(args); path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}
	lookup, err := envLookup()
	if err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
