package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/conductor/internal/detect"
	"github.com/harrison/conductor/internal/hostapi"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

// toOSPath converts a pathmatch-normalized (backslash-separated) game path
// to the host OS's own separator, for the one boundary where this tool
// touches the real filesystem rather than the game's virtual path space.
func toOSPath(p string) string {
	return pathmatch.ToOSPath(p)
}

func newInstallCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "install <mod-directory> <destination-directory>",
		Short: "Compute and apply the install plan for an unpacked mod directory",
		Args:  cobra.ExactArgs(2),
		RunE:  runInstallCommand,
	}
	c.Flags().String("game-id", hostapi.CyberpunkGameID, "Game ID to install for")
	c.Flags().String("mod-name", "", "Mod name reported to REDmod (defaults to the source directory's basename)")
	c.Flags().String("mod-version", "1.0", "Mod version reported to REDmod")
	c.Flags().Bool("redmod-autoconvert", false, "Fold legacy archive-only mods into a synthesized REDmod module (overrides config)")
	c.Flags().Bool("dry-run", false, "Print the instructions without touching the destination directory")
	return c
}

func runInstallCommand(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	sourceDir, destDir := args[0], args[1]
	gameID, _ := cmd.Flags().GetString("game-id")
	modName, _ := cmd.Flags().GetString("mod-name")
	modVersion, _ := cmd.Flags().GetString("mod-version")
	autoconvertFlag, _ := cmd.Flags().GetBool("redmod-autoconvert")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if gameID != hostapi.CyberpunkGameID {
		return fmt.Errorf("unsupported game ID %q", gameID)
	}
	if modName == "" {
		modName = filepath.Base(sourceDir)
	}

	features := sess.Config.ToHostFeatures()
	if cmd.Flags().Changed("redmod-autoconvert") {
		if autoconvertFlag {
			features.REDmodAutoconvertArchives = hostapi.FeatureEnabled
		} else {
			features.REDmodAutoconvertArchives = hostapi.FeatureDisabled
		}
	}

	files, err := listRelativeFiles(sourceDir)
	if err != nil {
		return err
	}

	ui := hostapi.NewConsoleAdapter(true)
	ctx := &detect.Context{
		UI:       ui,
		Logger:   sess.Logger,
		Files:    ui,
		ModInfo:  hostapi.ModInfo{Name: modName, Version: hostapi.ModVersion{V: modVersion}},
		Features: features,
	}

	instructions, err := sess.Pipeline.Install(ctx, files, sourceDir)
	if err != nil {
		return fmt.Errorf("install rejected: %w", err)
	}

	sess.Logger.Log(hostapi.LevelInfo, "install plan computed", map[string]interface{}{
		"kind":         string(instructions.Kind),
		"instructions": len(instructions.Instructions),
	})

	if dryRun {
		for _, in := range instructions.Instructions {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", in.Type, in.Source, in.Destination)
		}
		return nil
	}

	return applyInstructions(sourceDir, destDir, instructions)
}

// applyInstructions materializes an Instructions plan onto disk: copy
// instructions read from sourceDir and write under destDir, generate-file
// instructions write their literal bytes, and mkdir instructions create an
// empty directory.
func applyInstructions(sourceDir, destDir string, instructions layout.Instructions) error {
	for _, in := range instructions.Instructions {
		destPath := filepath.Join(destDir, toOSPath(in.Destination))

		switch in.Type {
		case layout.InstructionCopy:
			if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
				return fmt.Errorf("create directory for %s: %w", in.Destination, err)
			}
			srcPath := filepath.Join(sourceDir, toOSPath(in.Source))
			data, err := os.ReadFile(srcPath)
			if err != nil {
				return fmt.Errorf("read source %s: %w", in.Source, err)
			}
			if err := os.WriteFile(destPath, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", in.Destination, err)
			}
		case layout.InstructionGenerateFile:
			if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
				return fmt.Errorf("create directory for %s: %w", in.Destination, err)
			}
			if err := os.WriteFile(destPath, in.Data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", in.Destination, err)
			}
		case layout.InstructionMkdir:
			if err := os.MkdirAll(destPath, 0755); err != nil {
				return fmt.Errorf("mkdir %s: %w", in.Destination, err)
			}
		}
	}
	return nil
}
