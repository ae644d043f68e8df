package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/jwtconsole/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     server base URL
//	-d string     storage DSN
//	-l string     locale
//	-v string     log level
//	-t duration   request timeout
//
// args are filtered with flagx.FilterArgs first so flags owned by other
// stages (-c, -e) do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-l", "-v", "-t"})

	fs := flag.NewFlagSet("jwtconsole", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the API server")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "local session storage DSN")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "message language")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
