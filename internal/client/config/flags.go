package config

import (
	"flag"
	"os"
	"time"

	"github.com/releve-app/releve/internal/flagx"
)

// parseFlags overlays selected Config fields from command-line flags:
//
//	-a string   base URL of the remote API
//	-t int      request timeout in seconds
//	-d string   path of the local credential database
//
// Arguments are filtered to the flags handled here so the JSON-config flags
// (-c/-config) do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the remote API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.CredentialDB, "d", cfg.CredentialDB, "path of the credential database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
