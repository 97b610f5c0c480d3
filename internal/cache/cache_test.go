package cache

import (
	"path/filepath"
	"testing"

	"github.com/harrison/conductor/internal/hostapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_StoreAndLookupRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	s, err := Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	files := []string{`r6\scripts\Mod\a.reds`, `archive\pc\mod\x.archive`}
	hash := HashFiles(files)

	_, found, err := s.Lookup(hash, hostapi.CyberpunkGameID)
	require.NoError(t, err)
	assert.False(t, found)

	want := hostapi.TestSupportedResult{Supported: true, RequiredFiles: files}
	require.NoError(t, s.Store(hash, hostapi.CyberpunkGameID, want))

	got, found, err := s.Lookup(hash, hostapi.CyberpunkGameID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, got.Supported)
	assert.ElementsMatch(t, files, got.RequiredFiles)
}

func TestHashFiles_OrderIndependent(t *testing.T) {
	a := HashFiles([]string{"b", "a", "c"})
	b := HashFiles([]string{"c", "b", "a"})
	assert.Equal(t, a, b)
}

func TestStore_OverwritesExistingEntry(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	s, err := Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	hash := HashFiles([]string{"only.reds"})
	require.NoError(t, s.Store(hash, hostapi.CyberpunkGameID, hostapi.TestSupportedResult{Supported: false}))
	require.NoError(t, s.Store(hash, hostapi.CyberpunkGameID, hostapi.TestSupportedResult{Supported: true, RequiredFiles: []string{"only.reds"}}))

	got, found, err := s.Lookup(hash, hostapi.CyberpunkGameID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, got.Supported)
}
