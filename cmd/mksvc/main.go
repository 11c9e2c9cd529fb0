// Package main is the entry point for the mksvc binary.
package main

import (
	"os"

	"github.com/plexsphere/mksvc/cmd/mksvc/cmd"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
