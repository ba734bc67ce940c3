package config

import (
	"flag"
	"os"

	"github.com/Zaugg-M/Cloud-ToDo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-p string   Google Cloud project id
//	-k string   path to service account credentials JSON
//	-d string   Firestore database name
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-p", "-k", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ProjectID, "p", cfg.ProjectID, "Google Cloud project id")
	fs.StringVar(&cfg.CredentialsFile, "k", cfg.CredentialsFile, "path to service account credentials JSON")
	fs.StringVar(&cfg.Database, "d", cfg.Database, "Firestore database name")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
