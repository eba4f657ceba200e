// Package config handles configuration for the development backend,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the development backend.
//
// Fields:
//   - ListenAddr: bind address of the HTTP API.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - TokenTTL: lifetime of issued tokens.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps everything in memory.
//   - LogLevel: debug, info, warn or error.
//   - SeedEmail / SeedPassword: credentials of the demo user created on start.
type Config struct {
	ListenAddr   string
	SecretKey    string
	TokenTTL     time.Duration
	DatabaseDSN  string
	LogLevel     string
	SeedEmail    string
	SeedPassword string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8000"
	c.SecretKey = "secretKey"
	c.TokenTTL = 24 * time.Hour
	c.DatabaseDSN = ""
	c.LogLevel = "info"
	c.SeedEmail = "demo@reservas.dev"
	c.SeedPassword = "demo1234"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, configPathFn(args)); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
