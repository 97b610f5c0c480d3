package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harrison/conductor/internal/hostapi"
	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_FiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, hostapi.LevelWarn)

	l.Log(hostapi.LevelInfo, "should not appear", nil)
	l.Log(hostapi.LevelError, "should appear", nil)

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear")
}

func TestConsoleLogger_FormatsPayload(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, hostapi.LevelDebug)

	l.Log(hostapi.LevelInfo, "installing", map[string]interface{}{"kind": "cet.canon"})

	out := buf.String()
	assert.True(t, strings.Contains(out, "kind=cet.canon"))
}

func TestMultiLogger_FansOutToAll(t *testing.T) {
	var a, b bytes.Buffer
	m := NewMultiLogger(NewConsoleLogger(&a, hostapi.LevelDebug), NewConsoleLogger(&b, hostapi.LevelDebug))

	m.Log(hostapi.LevelInfo, "hello", nil)

	assert.Contains(t, a.String(), "hello")
	assert.Contains(t, b.String(), "hello")
}

func TestFileLogger_WritesRunFile(t *testing.T) {
	dir := t.TempDir()
	fl, err := NewFileLogger(dir, hostapi.LevelInfo)
	assert.NoError(t, err)
	defer fl.Close()

	fl.Log(hostapi.LevelInfo, "archive installed", nil)
}
