// Package main provides the entry point for the emailpro CLI.
package main

import (
	"os"

	"github.com/opencode-ai/emailpro/internal/cli"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
