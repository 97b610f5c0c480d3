package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// noSideEffectsConfig writes a config file pointing log/cache directories
// at the test's own temp directory, so running a command in a test never
// touches the working directory the test binary happens to run from.
func noSideEffectsConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "log_dir: "+filepath.Join(dir, "logs")+"\ncache_dir: "+filepath.Join(dir, "cache")+"\n")
	return path
}

func TestTestCommand_ReportsSupported(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "bin", "x64", "plugins", "cyber_engine_tweaks", "mods", "MyMod", "init.lua"), "")

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"test", src, "--config", noSideEffectsConfig(t)})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `"Supported": true`)
}

func TestInstallCommand_CopiesFilesToDestination(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "bin", "x64", "plugins", "cyber_engine_tweaks", "mods", "MyMod", "init.lua"), "print('hi')")

	root := NewRootCommand()
	root.SetArgs([]string{"install", src, dest, "--config", noSideEffectsConfig(t)})

	require.NoError(t, root.Execute())

	installed := filepath.Join(dest, "bin", "x64", "plugins", "cyber_engine_tweaks", "mods", "MyMod", "init.lua")
	data, err := os.ReadFile(installed)
	require.NoError(t, err)
	assert.Equal(t, "print('hi')", string(data))
}

func TestExplainCommand_RendersMarkdown(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "bin", "x64", "plugins", "cyber_engine_tweaks", "mods", "MyMod", "init.lua"), "")

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"explain", src, "--config", noSideEffectsConfig(t)})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "cet.canon")
}
