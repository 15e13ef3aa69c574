package config

import (
	"flag"
	"os"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the Pulse API (default from Config)
//	-d string   path of the credential database (default from Config)
//	-v          verbose request logging
//
// The config-file flag (-c) is consumed by parseJSON before this runs; it is
// registered here too so flag parsing does not reject it.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("pulse", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the Pulse API")
	fs.StringVar(&cfg.CredentialDB, "d", cfg.CredentialDB, "path of the credential database")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose request logging")
	fs.String("c", "", "path of a JSON config file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}
}

// configFilePath scans args for -c/--c without disturbing the later full
// flag parse.
func configFilePath(args []string) string {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-c", "--c":
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		}
	}
	return ""
}
