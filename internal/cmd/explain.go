package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/conductor/internal/detect"
	"github.com/harrison/conductor/internal/hostapi"
	"github.com/harrison/conductor/internal/reportdoc"
)

func newExplainCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "explain <mod-directory>",
		Short: "Render a Markdown (and optionally HTML) explanation of the install decision",
		Args:  cobra.ExactArgs(1),
		RunE:  runExplainCommand,
	}
	c.Flags().String("game-id", hostapi.CyberpunkGameID, "Game ID to evaluate against")
	c.Flags().String("mod-name", "", "Mod name reported to REDmod (defaults to the source directory's basename)")
	c.Flags().String("mod-version", "1.0", "Mod version reported to REDmod")
	c.Flags().String("html", "", "Optional path to also write an HTML rendering")
	return c
}

func runExplainCommand(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	sourceDir := args[0]
	gameID, _ := cmd.Flags().GetString("game-id")
	modName, _ := cmd.Flags().GetString("mod-name")
	modVersion, _ := cmd.Flags().GetString("mod-version")
	htmlPath, _ := cmd.Flags().GetString("html")

	if modName == "" {
		modName = filepath.Base(sourceDir)
	}

	files, err := listRelativeFiles(sourceDir)
	if err != nil {
		return err
	}

	report := reportdoc.Report{Files: files, GameID: gameID}
	report.Descriptor = sess.Pipeline.Winner(files)

	if report.Descriptor != nil {
		ctx := &detect.Context{
			UI:       hostapi.NewConsoleAdapter(false),
			Logger:   sess.Logger,
			Files:    hostapi.NewConsoleAdapter(false),
			ModInfo:  hostapi.ModInfo{Name: modName, Version: hostapi.ModVersion{V: modVersion}},
			Features: sess.Config.ToHostFeatures(),
		}
		report.Instructions, report.Err = sess.Pipeline.Install(ctx, files, sourceDir)
	}

	markdown := reportdoc.RenderMarkdown(report)
	fmt.Fprintln(cmd.OutOrStdout(), markdown)

	if htmlPath != "" {
		html, err := reportdoc.RenderHTML(report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
			return fmt.Errorf("write html report: %w", err)
		}
	}

	return nil
}
