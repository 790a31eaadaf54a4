package system

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/Z4phxr/Habbit-Tracker/internal/cli"
	"github.com/Z4phxr/Habbit-Tracker/internal/migration"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage"
	"github.com/Z4phxr/Habbit-Tracker/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	defer ctx.Store.Close()

	var db *sql.DB
	var dialect string
	switch s := ctx.Store.(type) {
	case *storage.SQLiteStore:
		db, dialect = s.GetDB(), "sqlite"
	case *storage.PostgresStore:
		db, dialect = s.GetDB(), "postgres"
	default:
		return fmt.Errorf("migrate command does not support this storage backend")
	}

	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sub, err := fs.Sub(migrations.FS, dialect)
	if err != nil {
		return fmt.Errorf("failed to open %s migrations: %w", dialect, err)
	}

	runner := migration.NewRunner(db, sub)
	count, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}

	return nil
}
