package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIBaseURL          = "SOCIALDECK_API_URL"
	EnvOnlineCheckInterval = "SOCIALDECK_ONLINE_CHECK_INTERVAL"
	EnvNotificationTTL     = "SOCIALDECK_NOTIFICATION_TTL"
	EnvHTTPTimeout         = "SOCIALDECK_HTTP_TIMEOUT"
	EnvStorageBackend      = "SOCIALDECK_STORAGE"
	EnvStorageDSN          = "SOCIALDECK_STORAGE_DSN"
	EnvLogLevel            = "SOCIALDECK_LOG_LEVEL"
	EnvLogBackend          = "SOCIALDECK_LOG_BACKEND"
)

// dotenvFiles are read for defaults that the real environment can still
// override. Missing files are skipped.
var dotenvFiles = []string{".env"}

// envLookup returns a lookup over the process environment backed by the
// dotenv files.
func envLookup() (func(string) (string, bool), error) {
	dotenv := map[string]string{}
	for _, f := range dotenvFiles {
		m, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range m {
			if _, seen := dotenv[k]; !seen {
				dotenv[k] = v
			}
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

// parseEnv overlays cfg with SOCIALDECK_* variables. Durations accept a
// Go duration string or whole seconds.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		EnvAPIBaseURL:     &cfg.APIBaseURL,
		EnvStorageBackend: &cfg.StorageBackend,
		EnvStorageDSN:     &cfg.StorageDSN,
		EnvLogLevel:       &cfg.LogLevel,
		EnvLogBackend:     &cfg.LogBackend,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	durs := map[string]*time.Duration{
		EnvOnlineCheckInterval: &cfg.OnlineCheckInterval,
		EnvNotificationTTL:     &cfg.NotificationTTL,
		EnvHTTPTimeout:         &cfg.HTTPTimeout,
	}
	for key, dst := range durs {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		d, err := parseSeconds(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
	}
	return nil
}
