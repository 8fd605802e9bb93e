// Package db manages the SQLite connection and schema for basecamp.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if necessary) the database at path, enables
// foreign keys, and brings the schema up to date. Callers own the handle;
// there is no package-level connection.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Foreign keys drive the ON DELETE CASCADE/SET NULL rules; without
	// this pragma SQLite ignores them.
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return conn, nil
}

// OpenMemory opens a private in-memory database with the full schema.
// Used by tests and throwaway tooling.
func OpenMemory() (*sql.DB, error) {
	return Open(":memory:")
}
