package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/socialdeck/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the API (default from Config)
//	-i int      online check interval in seconds (default from Config)
//	-s string   session storage backend: memory or sqlite
//	-l string   log level: debug, info, warn, error
//
// args is filtered to the flags handled here with flagx.FilterArgs, so
// -c/-config and unknown flags are left to other stages.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-s", "-l"})

	fs := flag.NewFlagSet("socialdeck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the API")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "session storage backend (memory|sqlite)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
	return nil
}
