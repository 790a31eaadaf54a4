package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Z4phxr/Habbit-Tracker/internal/cli"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage/postgres"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy the active owner's records from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	// If force flag is provided, delete existing database
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		// Don't delete if it's the source (user error protection)
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			// Close before deleting to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized habits storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

// migrateData copies the active owner's records from another store into the
// freshly initialized one
func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	var sourceStore storage.Provider
	if strings.HasPrefix(sourcePath, "postgres://") || strings.HasPrefix(sourcePath, "postgresql://") {
		if valid, err := postgres.ValidateConnString(sourcePath); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return err
		}
		sourceStore = postgres.New(sourcePath)
	} else {
		sourceStore = sqlite.NewStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	const earliestDay = "0001-01-01"
	const latestDay = "9999-12-31"

	fmt.Println("  Copying habits...")
	habits, err := sourceStore.GetAllHabits(ctx.Owner, true)
	if err != nil {
		return fmt.Errorf("failed to get habits from source: %w", err)
	}
	for _, habit := range habits {
		if err := ctx.Store.AddHabit(habit); err != nil {
			return fmt.Errorf("failed to add habit %s: %w", habit.ID, err)
		}
	}
	fmt.Printf("    Copied %d habits\n", len(habits))

	fmt.Println("  Copying completions...")
	completions, err := sourceStore.FindCompletionsInRange(ctx.Owner, earliestDay, latestDay)
	if err != nil {
		return fmt.Errorf("failed to get completions from source: %w", err)
	}
	for _, completion := range completions {
		if err := ctx.Store.CreateCompletion(completion); err != nil {
			return fmt.Errorf("failed to add completion %s: %w", completion.ID, err)
		}
	}
	fmt.Printf("    Copied %d completions\n", len(completions))

	fmt.Println("  Copying sleep intervals...")
	intervals, err := sourceStore.FindSleepIntervals(ctx.Owner,
		time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return fmt.Errorf("failed to get sleep intervals from source: %w", err)
	}
	for _, interval := range intervals {
		if err := ctx.Store.AddSleepInterval(interval); err != nil {
			return fmt.Errorf("failed to add sleep interval %s: %w", interval.ID, err)
		}
	}
	fmt.Printf("    Copied %d sleep intervals\n", len(intervals))

	fmt.Println("  Copying moods...")
	moods, err := sourceStore.FindMoodsInRange(ctx.Owner, earliestDay, latestDay)
	if err != nil {
		return fmt.Errorf("failed to get moods from source: %w", err)
	}
	for _, mood := range moods {
		if _, err := ctx.Store.UpsertMood(mood); err != nil {
			return fmt.Errorf("failed to add mood for %s: %w", mood.Day, err)
		}
	}
	fmt.Printf("    Copied %d moods\n", len(moods))

	return nil
}
