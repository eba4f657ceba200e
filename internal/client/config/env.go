package config

import (
	"fmt"
	"strconv"
)

const (
	EnvAPIURL    = "RESERVAS_API_URL"
	EnvSessionDB = "RESERVAS_SESSION_DB"
	EnvLogLevel  = "RESERVAS_LOG_LEVEL"
	EnvAuthAll   = "RESERVAS_AUTH_ALL_ENDPOINTS"
)

// parseEnv overlays cfg with the non-empty RESERVAS_* variables.
func parseEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvAPIURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := getenv(EnvSessionDB); v != "" {
		cfg.SessionDB = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvAuthAll); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAuthAll, err)
		}
		cfg.AuthAllEndpoints = b
	}
	return nil
}
