package filelock

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	lock := NewFileLock(lockPath)

	require.NotNil(t, lock)
	assert.Equal(t, lockPath, lock.path)
}

func TestLockUnlock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")
	lock := NewFileLock(lockPath)

	require.NoError(t, lock.Lock())
	require.NoError(t, lock.Unlock())
}

// TestConcurrentLocking exercises the same pattern cache.Store relies on:
// multiple FileLock instances over the same path, serializing access to a
// shared resource (here a counter file standing in for the decision
// database) rather than racing each other.
func TestConcurrentLocking(t *testing.T) {
	tmpDir := t.TempDir()
	lockPath := filepath.Join(tmpDir, "test.lock")
	counterPath := filepath.Join(tmpDir, "counter.txt")
	require.NoError(t, os.WriteFile(counterPath, []byte("0"), 0644))

	const goroutines = 5
	const iterations = 10

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				lock := NewFileLock(lockPath)
				require.NoError(t, lock.Lock())

				data, err := os.ReadFile(counterPath)
				require.NoError(t, err)
				var counter int
				fmt.Sscanf(string(data), "%d", &counter)
				time.Sleep(time.Millisecond)
				counter++
				require.NoError(t, os.WriteFile(counterPath, []byte(fmt.Sprintf("%d", counter)), 0644))

				require.NoError(t, lock.Unlock())
			}
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(counterPath)
	require.NoError(t, err)
	var finalCounter int
	fmt.Sscanf(string(data), "%d", &finalCounter)
	assert.Equal(t, goroutines*iterations, finalCounter)
}

func TestLockIsReentrantAfterUnlock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")
	lock := NewFileLock(lockPath)

	require.NoError(t, lock.Lock())
	require.NoError(t, lock.Unlock())
	require.NoError(t, lock.Lock())
	require.NoError(t, lock.Unlock())
}
