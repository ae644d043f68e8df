package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/jwtconsole/internal/flagx"
	"github.com/dmitrijs2005/jwtconsole/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero", so a partial file only
// overrides what it names.
type JsonConfig struct {
	ServerURL      *string         `json:"server_url"`
	StorageDSN     *string         `json:"storage_dsn"`
	Locale         *string         `json:"locale"`
	LogLevel       *string         `json:"log_level"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	RedirectDelay  *timex.Duration `json:"redirect_delay"`
	CloseDelay     *timex.Duration `json:"close_delay"`
	ClearDelay     *timex.Duration `json:"clear_delay"`
}

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.ServerURL, jc.ServerURL)
	setString(&cfg.StorageDSN, jc.StorageDSN)
	setString(&cfg.Locale, jc.Locale)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RedirectDelay != nil {
		cfg.RedirectDelay = jc.RedirectDelay.Duration
	}
	if jc.CloseDelay != nil {
		cfg.CloseDelay = jc.CloseDelay.Duration
	}
	if jc.ClearDelay != nil {
		cfg.ClearDelay = jc.ClearDelay.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
