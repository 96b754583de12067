package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultPath returns the database location: RAIMON_DB when set,
// otherwise ~/.raimon/raimon.db.
func DefaultPath() (string, error) {
	if p := os.Getenv("RAIMON_DB"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".raimon", "raimon.db"), nil
}

// dsn builds the connection string. Pragmas ride on the DSN so every
// pooled connection gets them, not just the one that ran an Exec.
func dsn(path string) string {
	q := url.Values{}
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	return "file:" + path + "?" + q.Encode()
}

// OpenDB opens the SQLite database at path, creating parent directories
// as needed, and brings the schema up to date. ":memory:" opens a
// private in-memory database.
func OpenDB(path string) (*sql.DB, error) {
	memory := path == ":memory:"
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if memory {
		// Each pooled connection would otherwise see its own empty database.
		database.SetMaxOpenConns(1)
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return database, nil
}
