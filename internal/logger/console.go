// Package logger provides the console and file logging implementations
// that back hostapi.Logger. Console output is prefixed with [HH:MM:SS]
// timestamps (file output with RFC 3339 timestamps), color is enabled
// automatically for a TTY writer, and messages below the configured level
// are discarded.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/conductor/internal/hostapi"
)

// levelRank orders hostapi.Level for filtering; higher ranks are more severe.
var levelRank = map[hostapi.Level]int{
	hostapi.LevelDebug: 0,
	hostapi.LevelInfo:  1,
	hostapi.LevelWarn:  2,
	hostapi.LevelError: 3,
}

func rankOf(level hostapi.Level) int {
	if r, ok := levelRank[level]; ok {
		return r
	}
	return levelRank[hostapi.LevelInfo]
}

// ConsoleLogger implements hostapi.Logger, writing timestamped, leveled,
// optionally colorized lines to an io.Writer. It is safe for concurrent use.
type ConsoleLogger struct {
	writer   io.Writer
	minLevel hostapi.Level
	mu       sync.Mutex
	color    bool
}

// NewConsoleLogger builds a ConsoleLogger writing to writer, filtering out
// messages below minLevel. Color is enabled automatically when writer is
// os.Stdout or os.Stderr and that fd is a TTY.
func NewConsoleLogger(writer io.Writer, minLevel hostapi.Level) *ConsoleLogger {
	return &ConsoleLogger{
		writer:   writer,
		minLevel: minLevel,
		color:    isTerminalWriter(writer),
	}
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (l *ConsoleLogger) paint(level hostapi.Level, text string) string {
	if !l.color {
		return text
	}
	switch level {
	case hostapi.LevelDebug:
		return color.New(color.FgHiBlack).Sprint(text)
	case hostapi.LevelWarn:
		return color.New(color.FgYellow).Sprint(text)
	case hostapi.LevelError:
		return color.New(color.FgRed, color.Bold).Sprint(text)
	default:
		return text
	}
}

// Log implements hostapi.Logger.
func (l *ConsoleLogger) Log(level hostapi.Level, message string, payload map[string]interface{}) {
	if rankOf(level) < rankOf(l.minLevel) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().Format("15:04:05")
	line := fmt.Sprintf("[%s] %-5s %s", ts, level, message)
	if len(payload) > 0 {
		line += " " + formatPayload(payload)
	}
	fmt.Fprintln(l.writer, l.paint(level, line))
}

func formatPayload(payload map[string]interface{}) string {
	out := "{"
	first := true
	for _, k := range sortedKeys(payload) {
		if !first {
			out += " "
		}
		first = false
		out += fmt.Sprintf("%s=%v", k, payload[k])
	}
	return out + "}"
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

var _ hostapi.Logger = (*ConsoleLogger)(nil)
