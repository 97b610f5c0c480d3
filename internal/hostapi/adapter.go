package hostapi

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/harrison/conductor/internal/pathmatch"
)

// ConsoleAdapter is a minimal UIAdapter + Logger + FileReader implementation
// for the CLI and for tests: dialogs always pick their first action (or
// "" if none are offered), notifications and logs are written to an
// io.Writer, and file reads go straight to disk.
type ConsoleAdapter struct {
	Writer  io.Writer
	Verbose bool
}

// NewConsoleAdapter returns a ConsoleAdapter writing to stderr.
func NewConsoleAdapter(verbose bool) *ConsoleAdapter {
	return &ConsoleAdapter{Writer: os.Stderr, Verbose: verbose}
}

// Log implements Logger.
func (c *ConsoleAdapter) Log(level Level, message string, payload map[string]interface{}) {
	if level == LevelDebug && !c.Verbose {
		return
	}
	fmt.Fprintf(c.Writer, "[%s] %s\n", level, message)
	if len(payload) > 0 && c.Verbose {
		for k, v := range payload {
			fmt.Fprintf(c.Writer, "    %s: %v\n", k, v)
		}
	}
}

// ShowDialog implements Dialog by printing the prompt and auto-selecting
// the first offered action, since the CLI has no interactive surface.
func (c *ConsoleAdapter) ShowDialog(_ context.Context, severity DialogSeverity, title, body string, actions []DialogAction) (string, error) {
	fmt.Fprintf(c.Writer, "[dialog:%s] %s: %s\n", severity, title, body)
	if len(actions) == 0 {
		return "", nil
	}
	fmt.Fprintf(c.Writer, "  (auto-choosing %q)\n", actions[0].Label)
	return actions[0].Value, nil
}

// SendNotification implements Notifier.
func (c *ConsoleAdapter) SendNotification(n Notification) {
	fmt.Fprintf(c.Writer, "[notify:%s] %s: %s\n", n.Type, n.Title, n.Message)
}

// ReadFile implements FileReader by reading directly from disk. pathOnDisk
// arrives in the game's canonical backslash form (detectors join it from
// ctx.DestinationPath via pathmatch.Join), so it's converted to the host
// OS's own separator before touching the filesystem.
func (c *ConsoleAdapter) ReadFile(pathOnDisk string) ([]byte, error) {
	return os.ReadFile(pathmatch.ToOSPath(pathOnDisk))
}

var (
	_ UIAdapter  = (*ConsoleAdapter)(nil)
	_ Logger     = (*ConsoleAdapter)(nil)
	_ FileReader = (*ConsoleAdapter)(nil)
)
