package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/reservas/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the REST backend
//	-s string   session database file
//	-l string   log level
//	-n int      notice delay (in seconds)
//	-auth-all   send the bearer token on every call
//
// args is filtered with flagx.Filter first so flags owned by other loaders
// (such as -c) are ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.Filter(args, []string{"-a", "-s", "-l", "-n"}, []string{"-auth-all"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the REST backend")
	fs.StringVar(&cfg.SessionDB, "s", cfg.SessionDB, "session database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	noticeDelay := fs.Int("n", int(cfg.NoticeDelay.Seconds()), "notice delay (in seconds)")
	fs.BoolVar(&cfg.AuthAllEndpoints, "auth-all", cfg.AuthAllEndpoints, "send the bearer token on every call")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.NoticeDelay = time.Duration(*noticeDelay) * time.Second
	return nil
}
