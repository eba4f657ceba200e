// Package flagx helps several independent flag sets share os.Args.
//
// Each config loader parses only the flags it owns, so unknown flags meant
// for another loader never make flag.Parse fail.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// normalize maps "--name" to "-name" so both spellings match one entry.
func normalize(name string) string {
	if strings.HasPrefix(name, "--") {
		return name[1:]
	}
	return name
}

// FilterArgs returns the subset of args that belongs to allowedFlags.
// Every allowed flag is assumed to take a value.
//
// Supported forms:
//
//	-c conf.json
//	-c=conf.json
//	--config=conf.json
func FilterArgs(args []string, allowedFlags []string) []string {
	return Filter(args, allowedFlags, nil)
}

// Filter is FilterArgs with support for boolean switches. A switch never
// consumes the following argument as its value; "-switch=false" still works.
func Filter(args []string, valued []string, switches []string) []string {
	withValue := make(map[string]bool, len(valued)+len(switches))
	for _, f := range valued {
		withValue[normalize(f)] = true
	}
	for _, f := range switches {
		withValue[normalize(f)] = false
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, ok := strings.Cut(arg, "="); ok {
			if _, known := withValue[normalize(name)]; known {
				filtered = append(filtered, arg)
			}
			continue
		}

		takesValue, known := withValue[normalize(arg)]
		if !known {
			continue
		}
		filtered = append(filtered, arg)
		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath returns the JSON config path given with -c or -config,
// or the empty string when neither is present.
func ConfigPath() string {
	return ConfigPathFrom(os.Args[1:])
}

// ConfigPathFrom is ConfigPath over an explicit argument list.
func ConfigPathFrom(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-path", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
