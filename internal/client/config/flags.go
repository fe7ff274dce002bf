package config

import (
	"flag"
	"os"

	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Only -f, -d, -l and -p are looked at; everything else in os.Args is
// filtered out by flagx.FilterArgs. A malformed value panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-d", "-l", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AccountsFile, "f", cfg.AccountsFile, "path of the accounts file")
	fs.StringVar(&cfg.Digest, "d", cfg.Digest, "password digest (djb2, argon2id)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.IntVar(&cfg.MinPasswordLength, "p", cfg.MinPasswordLength, "minimum password length")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
