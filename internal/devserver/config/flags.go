package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/reservas/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   listen address
//	-k string   JWT secret key
//	-d string   PostgreSQL DSN
//	-l string   log level
//	-t duration token lifetime, e.g. 12h
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-k", "-d", "-l", "-t"})

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "listen address")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "JWT secret key")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "token lifetime")

	return fs.Parse(args)
}
