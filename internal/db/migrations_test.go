package db

import "testing"

func TestOpenMemoryAppliesSchema(t *testing.T) {
	conn, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	defer conn.Close()

	for _, table := range []string{"users", "locations", "activities", "manufacturers", "transactions"} {
		var name string
		err := conn.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	var version int
	if err := conn.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version); err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	if want := migrations[len(migrations)-1].Version; version != want {
		t.Errorf("schema version = %d, want %d", version, want)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	conn, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	defer conn.Close()

	if err := Migrate(conn); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		t.Fatalf("failed to count versions: %v", err)
	}
	if count != len(migrations) {
		t.Errorf("schema_version rows = %d, want %d", count, len(migrations))
	}
}
