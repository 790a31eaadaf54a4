package cli

import (
	"fmt"
	"time"

	"github.com/Z4phxr/Habbit-Tracker/internal/backup"
	"github.com/Z4phxr/Habbit-Tracker/internal/constants"
	"github.com/Z4phxr/Habbit-Tracker/internal/logger"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage"
	"github.com/Z4phxr/Habbit-Tracker/internal/tracker"
)

type Context struct {
	Store    storage.Provider
	Owner    string
	Location *time.Location
}

// Ledger returns the completion/mood mutation engine over the context store
func (c *Context) Ledger() *tracker.Ledger {
	return tracker.NewLedger(c.Store)
}

// Assembler returns the view assembler computing in the context timezone
func (c *Context) Assembler() *tracker.Assembler {
	return tracker.NewAssembler(c.Store, c.Location)
}

// Resolver returns a night-window resolver in the context timezone
func (c *Context) Resolver() *tracker.Resolver {
	return tracker.NewResolver(c.Store, c.Location)
}

// Today returns today's date string in the context timezone
func (c *Context) Today() string {
	return time.Now().In(c.Location).Format(constants.DateFormat)
}

// ResolveDay returns the given date, or today when empty, and validates the
// format. Mutation commands go through this so bad dates are rejected rather
// than silently remapped.
func (c *Context) ResolveDay(date string) (string, error) {
	if date == "" {
		return c.Today(), nil
	}
	if _, err := tracker.ParseDay(date); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors.
// Only file-backed stores are backed up.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*storage.SQLiteStore); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParsePeriod maps a period flag value to a calendar view mode
func ParsePeriod(s string) (tracker.ViewMode, error) {
	switch constants.ViewPeriod(s) {
	case constants.PeriodDay:
		return tracker.ViewDay, nil
	case constants.PeriodWeek:
		return tracker.ViewWeek, nil
	case constants.PeriodMonth:
		return tracker.ViewMonth, nil
	default:
		return "", fmt.Errorf("invalid period: %s (expected day, week, or month)", s)
	}
}
