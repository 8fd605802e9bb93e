// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests always run against the
// authoritative schema. Do not hardcode CREATE TABLE statements in test
// files; use setupTestDB() and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/basecamp/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative
// schema and foreign keys enabled.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedUser inserts a test user and returns its ID.
func seedUser(t *testing.T, db *sql.DB, email string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(
		"INSERT INTO users (id, email, hashed_password) VALUES (?, ?, ?)",
		id, email, "not-a-real-hash",
	)
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return id
}

// seedLocation inserts a test location and returns its ID.
func seedLocation(t *testing.T, db *sql.DB, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(
		"INSERT INTO locations (id, name, location_type) VALUES (?, ?, 'other')",
		id, name,
	)
	if err != nil {
		t.Fatalf("failed to seed location %s: %v", name, err)
	}
	return id
}

// seedActivity inserts a bare test activity and returns its ID.
func seedActivity(t *testing.T, db *sql.DB, title string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(
		"INSERT INTO activities (id, title) VALUES (?, ?)",
		id, title,
	)
	if err != nil {
		t.Fatalf("failed to seed activity %s: %v", title, err)
	}
	return id
}

// seedManufacturer inserts a test manufacturer and returns its ID.
func seedManufacturer(t *testing.T, db *sql.DB, name string, hidden bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(
		"INSERT INTO manufacturers (id, name, hidden) VALUES (?, ?, ?)",
		id, name, hidden,
	)
	if err != nil {
		t.Fatalf("failed to seed manufacturer %s: %v", name, err)
	}
	return id
}
