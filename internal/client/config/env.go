package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/jwtconsole/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "JWTCONSOLE_"

// lookupEnv is a test seam for os.LookupEnv.
var lookupEnv = os.LookupEnv

// parseEnv overlays cfg with JWTCONSOLE_* variables. When -e/-env-file names
// a dotenv file its values are used for variables the process environment
// does not set.
func parseEnv(cfg *Config, args []string) error {
	fileVars := map[string]string{}
	if path := flagx.EnvFileFlags(args); path != "" {
		vars, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("read env file: %w", err)
		}
		fileVars = vars
	}

	get := func(name string) (string, bool) {
		key := envPrefix + name
		if v, ok := lookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok && v != ""
	}

	if v, ok := get("SERVER_URL"); ok {
		cfg.ServerURL = v
	}
	if v, ok := get("STORAGE_DSN"); ok {
		cfg.StorageDSN = v
	}
	if v, ok := get("LOCALE"); ok {
		cfg.Locale = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := get("REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sREQUEST_TIMEOUT: %w", envPrefix, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}
