package config

import (
	"flag"
	"os"
	"time"

	"github.com/dpbr/dpbr-client/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   backend base URL
//	-p string   API path prefix
//	-t int      request timeout in seconds
//	-s string   storage backend
//
// os.Args is filtered with flagx.FilterArgs first so REPL arguments and the
// -c flag do not trip the parser. Invalid values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-p", "-t", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "u", cfg.APIURL, "backend base URL")
	fs.StringVar(&cfg.APIPrefix, "p", cfg.APIPrefix, "API path prefix")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend (sqlite, redis, memory, none)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
