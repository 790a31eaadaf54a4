package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Z4phxr/Habbit-Tracker/internal/constants"
)

func setupTestDB(t *testing.T) string {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "habits.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS habits (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}

	_, err = db.Exec("INSERT INTO habits (id, name) VALUES ('h1', 'Read'), ('h2', 'Run')")
	if err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}

	db.Close()
	return dbPath
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Errorf("backup file was not created: %s", backupPath)
	}

	db, err := sql.Open("sqlite", backupPath)
	if err != nil {
		t.Fatalf("failed to open backup database: %v", err)
	}
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count)
	if err != nil {
		t.Fatalf("failed to query backup database: %v", err)
	}

	if count != 2 {
		t.Errorf("expected 2 rows in backup, got %d", count)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nope.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup should fail when the database does not exist")
	}
}

func TestListBackupsEmpty(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)

	numBackups := constants.MaxBackups + 5
	for i := 0; i < numBackups; i++ {
		_, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		// Brief sleep so filenames stay unique
		time.Sleep(10 * time.Millisecond)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}

	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}

	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups are not sorted correctly: backup %d is newer than backup %d", i, i-1)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Mutate the live database after taking the backup
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec("DELETE FROM habits"); err != nil {
		t.Fatalf("failed to mutate database: %v", err)
	}
	db.Close()

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open restored database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		t.Fatalf("failed to query restored database: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 rows after restore, got %d", count)
	}
}

func TestRestoreBackupInvalidFile(t *testing.T) {
	dbPath := setupTestDB(t)

	badPath := filepath.Join(t.TempDir(), "not-a-db")
	if err := os.WriteFile(badPath, []byte("garbage"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	mgr := NewManager(dbPath)
	if err := mgr.RestoreBackup(badPath); err == nil {
		t.Error("RestoreBackup should reject a non-database file")
	}
}
