package sqlitemigrate

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	})
	return db
}

func migrationCount(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	var count int64
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	return count
}

func TestApplyMigrationsRecordsApplied(t *testing.T) {
	db := openInMemoryDB(t)

	migrations := fstest.MapFS{
		"001_state.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE app_state(id INTEGER PRIMARY KEY, payload BLOB);"),
		},
	}
	if err := ApplyMigrations(db, migrations, ""); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if got := migrationCount(t, db); got != 1 {
		t.Fatalf("expected 1 migration row, got %d", got)
	}

	if err := ApplyMigrations(db, migrations, ""); err != nil {
		t.Fatalf("replay should be idempotent: %v", err)
	}
	if got := migrationCount(t, db); got != 1 {
		t.Fatalf("expected replay to record nothing, got %d rows", got)
	}
}

func TestApplyMigrationsLeavesFailuresUnrecorded(t *testing.T) {
	db := openInMemoryDB(t)

	bad := fstest.MapFS{
		"001_state.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREAT TABLE app_state(id INTEGER);"),
		},
	}
	if err := ApplyMigrations(db, bad, ""); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if got := migrationCount(t, db); got != 0 {
		t.Fatalf("expected failed migration unrecorded, got %d rows", got)
	}

	fixed := fstest.MapFS{
		"001_state.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE app_state(id INTEGER PRIMARY KEY);"),
		},
	}
	if err := ApplyMigrations(db, fixed, ""); err != nil {
		t.Fatalf("apply fixed migration: %v", err)
	}
	if got := migrationCount(t, db); got != 1 {
		t.Fatalf("expected fixed migration recorded, got %d rows", got)
	}
}

func TestExtractUpMigration(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE a(id);\n-- +migrate Down\nDROP TABLE a;"
	up := ExtractUpMigration(content)
	if up != "\nCREATE TABLE a(id);\n" {
		t.Fatalf("unexpected up section %q", up)
	}
	if ExtractUpMigration("CREATE TABLE b(id);") != "CREATE TABLE b(id);" {
		t.Fatal("expected unmarked content applied whole")
	}
}
