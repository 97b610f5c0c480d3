// Package cache memoizes pipeline testSupported decisions in a small
// sqlite database, keyed by a content hash of the sorted input file list.
// It is a pure performance aid: a cache miss or disabled cache always
// falls back to re-running the pipeline, never to a wrong answer.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/conductor/internal/filelock"
	"github.com/harrison/conductor/internal/hostapi"
)

const schema = `
CREATE TABLE IF NOT EXISTS test_supported_decisions (
	id TEXT PRIMARY KEY,
	file_set_hash TEXT NOT NULL UNIQUE,
	game_id TEXT NOT NULL,
	supported INTEGER NOT NULL,
	required_files TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_test_supported_hash ON test_supported_decisions(file_set_hash);
`

// Decision is the cached form of an hostapi.TestSupportedResult.
type Decision struct {
	Supported     bool
	RequiredFiles []string
}

// Store is a sqlite-backed cache of testSupported decisions, guarded by a
// gofrs/flock lock over the database file so multiple CLI invocations
// against the same mod directory don't race each other's writes.
type Store struct {
	db   *sql.DB
	lock *filelock.FileLock
}

// Open creates dbPath's parent directory if needed and opens (creating if
// absent) the decision cache database.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("cache: empty database path")
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("cache: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("cache: open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: init schema: %w", err)
	}

	lockPath := dbPath + ".lock"
	if dbPath == ":memory:" {
		lockPath = filepath.Join(os.TempDir(), "v2077mod-cache-memory.lock")
	}

	return &Store{db: db, lock: filelock.NewFileLock(lockPath)}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// HashFiles returns the deterministic cache key for a file set: the
// lowercase hex sha256 of the sorted, newline-joined path list.
func HashFiles(files []string) string {
	sorted := append([]string(nil), files...)
	sort.Strings(sorted)
	h := sha256.New()
	for _, f := range sorted {
		h.Write([]byte(f))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Lookup returns a previously cached decision for the given file set hash
// and game ID, if one exists.
func (s *Store) Lookup(fileSetHash, gameID string) (Decision, bool, error) {
	var supported int
	var requiredFilesJSON string
	row := s.db.QueryRow(
		`SELECT supported, required_files FROM test_supported_decisions WHERE file_set_hash = ? AND game_id = ?`,
		fileSetHash, gameID,
	)
	switch err := row.Scan(&supported, &requiredFilesJSON); err {
	case nil:
	case sql.ErrNoRows:
		return Decision{}, false, nil
	default:
		return Decision{}, false, fmt.Errorf("cache: lookup: %w", err)
	}

	var requiredFiles []string
	if err := json.Unmarshal([]byte(requiredFilesJSON), &requiredFiles); err != nil {
		return Decision{}, false, fmt.Errorf("cache: decode required_files: %w", err)
	}

	return Decision{Supported: supported != 0, RequiredFiles: requiredFiles}, true, nil
}

// Store persists result for fileSetHash/gameID, replacing any prior entry,
// while holding the cache's file lock so concurrent writers never interleave.
func (s *Store) Store(fileSetHash, gameID string, result hostapi.TestSupportedResult) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("cache: acquire lock: %w", err)
	}
	defer s.lock.Unlock()

	requiredFilesJSON, err := json.Marshal(result.RequiredFiles)
	if err != nil {
		return fmt.Errorf("cache: encode required_files: %w", err)
	}

	supported := 0
	if result.Supported {
		supported = 1
	}

	_, err = s.db.Exec(
		`INSERT INTO test_supported_decisions (id, file_set_hash, game_id, supported, required_files, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(file_set_hash) DO UPDATE SET
			game_id = excluded.game_id,
			supported = excluded.supported,
			required_files = excluded.required_files,
			created_at = excluded.created_at`,
		uuid.New().String(), fileSetHash, gameID, supported, string(requiredFilesJSON), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("cache: store decision: %w", err)
	}
	return nil
}
