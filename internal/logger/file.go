package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/harrison/conductor/internal/hostapi"
)

// FileLogger writes every logged line to a timestamped run file under
// logDir, and keeps a latest.log symlink pointing at the most recent run
// (mirroring the host manager's own log directory convention).
type FileLogger struct {
	minLevel hostapi.Level
	file     *os.File
	mu       sync.Mutex
}

// NewFileLogger creates logDir if needed, opens a new run-<timestamp>.log
// file, and repoints latest.log at it.
func NewFileLogger(logDir string, minLevel hostapi.Level) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s.log", time.Now().Format("20060102-150405")))
	f, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("create run log file: %w", err)
	}

	symlink := filepath.Join(logDir, "latest.log")
	_ = os.Remove(symlink)
	_ = os.Symlink(filepath.Base(runFile), symlink)

	return &FileLogger{minLevel: minLevel, file: f}, nil
}

// Log implements hostapi.Logger.
func (l *FileLogger) Log(level hostapi.Level, message string, payload map[string]interface{}) {
	if rankOf(level) < rankOf(l.minLevel) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().Format(time.RFC3339)
	line := fmt.Sprintf("[%s] %-5s %s", ts, level, message)
	if len(payload) > 0 {
		line += " " + formatPayload(payload)
	}
	fmt.Fprintln(l.file, line)
}

// Close flushes and closes the underlying run log file.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

var _ hostapi.Logger = (*FileLogger)(nil)

// MultiLogger fans a single Log call out to every wrapped hostapi.Logger.
type MultiLogger struct {
	loggers []hostapi.Logger
}

// NewMultiLogger returns a hostapi.Logger that forwards to every non-nil
// logger given. Useful for combining a ConsoleLogger with a FileLogger.
func NewMultiLogger(loggers ...hostapi.Logger) *MultiLogger {
	var filtered []hostapi.Logger
	for _, l := range loggers {
		if l != nil {
			filtered = append(filtered, l)
		}
	}
	return &MultiLogger{loggers: filtered}
}

func (m *MultiLogger) Log(level hostapi.Level, message string, payload map[string]interface{}) {
	for _, l := range m.loggers {
		l.Log(level, message, payload)
	}
}

var _ hostapi.Logger = (*MultiLogger)(nil)
