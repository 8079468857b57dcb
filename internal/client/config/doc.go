// Package config loads runtime configuration for the socialdeck CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via flags: -c or -config.
//  3. Environment variables SOCIALDECK_*, with a .env file in the working
//     directory supplying values the environment does not set.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API
//	-i int      online status check interval (seconds)
//	-s string   session storage backend (memory|sqlite)
//	-l string   log level
//
// # File schema
//
// Durations are strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3001",
//	  "online_check_interval": "10s",
//	  "notification_ttl": "5s",
//	  "storage_backend": "sqlite",
//	  "storage_dsn": "/tmp/socialdeck.db",
//	  "log_level": "debug",
//	  "log_backend": "zap"
//	}
//
// The same keys are used in YAML.
package config
