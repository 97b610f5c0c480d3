// Package cmd wires the pipeline, config, cache, and logger packages into
// the v2077mod cobra CLI: testSupported/install's command-line analogues,
// plus an explain command for inspecting a decision before applying it.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// NewRootCommand builds the v2077mod root command and its subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "v2077mod",
		Short: "Classify and install Cyberpunk 2077 mod archives",
		Long: `v2077mod runs the same layout-detection pipeline the in-game mod
manager uses to classify an unpacked mod archive (CET, Redscript, Red4Ext,
REDmod, archive-only, INI/Reshade, JSON, or a composite of these) and to
compute the install instructions for it, without requiring the host
application.`,
		Version:      Version,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "Path to config file (default: .v2077mod/config.yaml)")
	root.PersistentFlags().Bool("verbose", false, "Show debug-level logging")

	root.AddCommand(newTestCommand())
	root.AddCommand(newInstallCommand())
	root.AddCommand(newExplainCommand())

	return root
}
