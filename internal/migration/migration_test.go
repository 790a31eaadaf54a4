package migration

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY, name TEXT NOT NULL);"),
		},
		"002_add_notes.sql": &fstest.MapFile{
			Data: []byte("ALTER TABLE habits ADD COLUMN note TEXT NOT NULL DEFAULT '';"),
		},
	}
}

func TestApplyMigrationsFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 applied migrations, got %d", count)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}

	// Both migrations took effect
	if _, err := db.Exec("INSERT INTO habits (id, name, note) VALUES ('h1', 'Read', 'daily')"); err != nil {
		t.Errorf("migrated schema rejected insert: %v", err)
	}
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 migrations on second run, got %d", count)
	}
}

func TestApplyMigrationsPartialUpgrade(t *testing.T) {
	db := openTestDB(t)

	// Apply only the first migration, then make the second one visible
	first := fstest.MapFS{"001_init.sql": testFS()["001_init.sql"]}
	if _, err := NewRunner(db, first).ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}

	runner := NewRunner(db, testFS())
	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("upgrade ApplyMigrations failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 pending migration, got %d", count)
	}
}

func TestApplyMigrationsRollsBackOnFailure(t *testing.T) {
	db := openTestDB(t)

	broken := testFS()
	broken["002_add_notes.sql"] = &fstest.MapFile{Data: []byte("THIS IS NOT SQL;")}

	runner := NewRunner(db, broken)
	count, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected failure from broken migration")
	}
	if count != 1 {
		t.Errorf("expected 1 migration applied before the failure, got %d", count)
	}

	// The failed migration must not have bumped the version
	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("expected version 1 after rollback, got %d", version)
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	db := openTestDB(t)

	bad := fstest.MapFS{
		"init.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
	}
	if _, err := NewRunner(db, bad).ReadMigrationFiles(); err == nil {
		t.Error("expected error for filename without version prefix")
	}

	dup := fstest.MapFS{
		"001_a.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
		"001_b.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
	}
	if _, err := NewRunner(db, dup).ReadMigrationFiles(); err == nil {
		t.Error("expected error for duplicate version")
	}
}

func TestValidateVersion(t *testing.T) {
	db := openTestDB(t)

	runner := NewRunner(db, testFS())
	if err := runner.ValidateVersion(); err == nil {
		t.Error("fresh database should fail validation until migrated")
	}

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("migrated database should validate: %v", err)
	}
}
