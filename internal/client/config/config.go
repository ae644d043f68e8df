package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the CLI.
type Config struct {
	ServerURL      string
	StorageDSN     string
	Locale         string
	LogLevel       string
	RequestTimeout time.Duration

	// delayed actions of the views
	RedirectDelay time.Duration
	CloseDelay    time.Duration
	ClearDelay    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.StorageDSN = "jwtconsole.db"
	c.Locale = "ca"
	c.LogLevel = "info"
	c.RequestTimeout = 0
	c.RedirectDelay = 2 * time.Second
	c.CloseDelay = 1500 * time.Millisecond
	c.ClearDelay = 3 * time.Second
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid server url %q", c.ServerURL)
	}
	if c.StorageDSN == "" {
		return errors.New("storage dsn is empty")
	}
	if c.RequestTimeout < 0 || c.RedirectDelay < 0 || c.CloseDelay < 0 || c.ClearDelay < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}

// LoadConfig constructs a Config from defaults, environment, an optional JSON
// file and the flags in args (os.Args[1:] in production). Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
