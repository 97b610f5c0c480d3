package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/conductor/internal/cache"
	"github.com/harrison/conductor/internal/hostapi"
)

func newTestCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "test <mod-directory>",
		Short: "Run testSupported against an unpacked mod directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runTestCommand,
	}
	c.Flags().String("game-id", hostapi.CyberpunkGameID, "Game ID to test against")
	return c
}

func runTestCommand(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	gameID, _ := cmd.Flags().GetString("game-id")

	files, err := listRelativeFiles(args[0])
	if err != nil {
		return err
	}

	result := lookupOrCompute(sess, files, gameID)

	sess.Logger.Log(hostapi.LevelInfo, "testSupported finished", map[string]interface{}{
		"supported": result.Supported,
		"files":     len(files),
	})

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// lookupOrCompute consults the decision cache before falling back to the
// pipeline, storing a fresh decision for next time.
func lookupOrCompute(sess *session, files []string, gameID string) hostapi.TestSupportedResult {
	if sess.Cache == nil {
		return sess.Pipeline.TestSupported(files, gameID)
	}

	hash := cache.HashFiles(files)
	if decision, found, err := sess.Cache.Lookup(hash, gameID); err == nil && found {
		return hostapi.TestSupportedResult{Supported: decision.Supported, RequiredFiles: decision.RequiredFiles}
	}

	result := sess.Pipeline.TestSupported(files, gameID)
	_ = sess.Cache.Store(hash, gameID, result)
	return result
}
