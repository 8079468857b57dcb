package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used only for decoding config files. Pointer fields
// tell an absent key from a zero value, so a file only overrides what it
// sets.
type fileConfig struct {
	APIBaseURL          *string   `json:"api_base_url" yaml:"api_base_url"`
	OnlineCheckInterval *Duration `json:"online_check_interval" yaml:"online_check_interval"`
	NotificationTTL     *Duration `json:"notification_ttl" yaml:"notification_ttl"`
	HTTPTimeout         *Duration `json:"http_timeout" yaml:"http_timeout"`
	StorageBackend      *string   `json:"storage_backend" yaml:"storage_backend"`
	StorageDSN          *string   `json:"storage_dsn" yaml:"storage_dsn"`
	LogLevel            *string   `json:"log_level" yaml:"log_level"`
	LogBackend          *string   `json:"log_backend" yaml:"log_backend"`
}

// parseFile overlays cfg with a JSON or YAML file. The format follows the
// extension: .yaml and .yml are YAML, anything else is JSON.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc fileConfig) apply(cfg *Config) {
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.StorageBackend, fc.StorageBackend)
	setString(&cfg.StorageDSN, fc.StorageDSN)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogBackend, fc.LogBackend)
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.NotificationTTL != nil {
		cfg.NotificationTTL = fc.NotificationTTL.Duration
	}
	if fc.HTTPTimeout != nil {
		cfg.HTTPTimeout = fc.HTTPTimeout.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
