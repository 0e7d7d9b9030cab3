// Package journal keeps an append-only log of the actions applied to an
// assessment session. It lives in SQLite; the default DSN is in-memory so
// nothing outlives the process unless a file path is configured.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// ErrNotFound is returned by OpenExisting when no journal file exists.
var ErrNotFound = errors.New("journal not found")

// Journal holds the database handle and provides access to the entry repo.
type Journal struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Open creates a Journal backed by the SQLite database at dsn.
// It applies recommended pragmas and creates the tables if needed.
func Open(dsn string) (*Journal, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	if !isMemory(dsn) {
		if err := EnsureDir(dsn); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Journal{db: db, seq: seq}, nil
}

// OpenExisting opens a journal file for reading without creating it.
func OpenExisting(path string) (*Journal, error) {
	if !isMemory(path) {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
			}
			return nil, fmt.Errorf("stat journal: %w", err)
		}
	}
	return Open(path)
}

// DB returns the underlying *sql.DB for raw queries.
func (j *Journal) DB() *sql.DB {
	return j.db
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Repo returns a Repo backed by this journal.
func (j *Journal) Repo() Repo {
	return &entryRepo{db: j.db, seq: j.seq}
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func createSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS journal_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL UNIQUE,
			timestamp_ns INTEGER NOT NULL,
			session_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			section_index INTEGER NOT NULL DEFAULT 0,
			scenario_index INTEGER NOT NULL DEFAULT 0,
			question_id TEXT NOT NULL DEFAULT '',
			payload TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_session ON journal_entries (session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_kind ON journal_entries (kind)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// DefaultPath returns the journal file used when journaling to disk is
// requested without a path. Resolution order:
// 1. BALANCER_JOURNAL environment variable
// 2. $XDG_STATE_HOME/balancer/journal.db
// 3. ~/.local/state/balancer/journal.db
func DefaultPath() (string, error) {
	if p := os.Getenv("BALANCER_JOURNAL"); p != "" {
		return p, nil
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "balancer", "journal.db"), nil
}

func isMemory(dsn string) bool {
	return dsn == MemoryDSN || strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	path = strings.TrimPrefix(path, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
