// Package main provides the v2077mod CLI entry point: a host-independent
// way to run the Cyberpunk 2077 mod-archive classification and install
// pipeline against an unpacked mod directory.
package main

import (
	"fmt"
	"os"

	"github.com/harrison/conductor/internal/cmd"
)

// version is the current v2077mod release, injected at build time via -ldflags.
var version = "dev"

func main() {
	cmd.Version = version
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
