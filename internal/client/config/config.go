package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the reservation CLI.
//
// Fields:
//   - APIBaseURL: root URL of the REST backend, e.g. http://127.0.0.1:8000.
//   - SessionDB: path of the SQLite file holding the session.
//   - LogLevel: debug, info, warn or error.
//   - NoticeDelay: how long a transient notice stays before it clears.
//   - AuthAllEndpoints: attach the bearer token to every call instead of
//     only the reservation list/get/delete calls.
//   - InternalBranchIDs: branches hidden from the create screen when the
//     backend does not flag them itself.
type Config struct {
	APIBaseURL        string
	SessionDB         string
	LogLevel          string
	NoticeDelay       time.Duration
	AuthAllEndpoints  bool
	InternalBranchIDs []int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.SessionDB = "reservas.db"
	c.LogLevel = "info"
	c.NoticeDelay = 3 * time.Second
	c.AuthAllEndpoints = false
	c.InternalBranchIDs = []int64{13}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.Getenv)
}

func load(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, configPathFn(args)); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg, getenv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
