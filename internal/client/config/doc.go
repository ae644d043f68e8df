// Package config loads runtime configuration for the jwtconsole CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: an optional dotenv file selected with -e or -env-file,
//     then the process environment, which wins over the file.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string     base URL of the user administration API
//	-d string     SQLite DSN of the local session store
//	-l string     message language (ca, en)
//	-v string     log level (debug, info, warn, error)
//	-t duration   per-request timeout, 0 for none
//
// # Environment
//
//	JWTCONSOLE_SERVER_URL, JWTCONSOLE_STORAGE_DSN, JWTCONSOLE_LOCALE,
//	JWTCONSOLE_LOG_LEVEL, JWTCONSOLE_REQUEST_TIMEOUT
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "1500ms" or
// integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8080",
//	  "storage_dsn": "jwtconsole.db",
//	  "locale": "ca",
//	  "log_level": "info",
//	  "request_timeout": "0s",
//	  "redirect_delay": "2s",
//	  "close_delay": "1500ms",
//	  "clear_delay": "3s"
//	}
package config
