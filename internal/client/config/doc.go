// Package config loads runtime configuration for the reservation CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. RESERVAS_API_URL, RESERVAS_SESSION_DB, RESERVAS_LOG_LEVEL and
//     RESERVAS_AUTH_ALL_ENDPOINTS.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST backend
//	-s string   session database file
//	-l string   log level
//	-n int      notice delay (seconds)
//	-auth-all   send the bearer token on every call
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000",
//	  "session_db": "reservas.db",
//	  "log_level": "info",
//	  "notice_delay": "3s",
//	  "auth_all_endpoints": false,
//	  "internal_branch_ids": [13]
//	}
package config
