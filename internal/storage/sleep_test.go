package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
)

func addTestSleep(t *testing.T, store *SQLiteStore, owner string, start, end time.Time) models.SleepInterval {
	t.Helper()
	interval := models.SleepInterval{
		ID:      uuid.New().String(),
		OwnerID: owner,
		Start:   start,
		End:     end,
	}
	if err := store.AddSleepInterval(interval); err != nil {
		t.Fatalf("failed to add sleep interval: %v", err)
	}
	return interval
}

func TestAddSleepIntervalRejectsInvertedRange(t *testing.T) {
	store, cleanup := setupTestSQLiteStore(t)
	defer cleanup()

	now := time.Now()
	err := store.AddSleepInterval(models.SleepInterval{
		ID:      uuid.New().String(),
		OwnerID: "alice",
		Start:   now,
		End:     now.Add(-time.Hour),
	})
	if err == nil {
		t.Error("expected error for end before start")
	}
}

func TestFindSleepIntervalsOverlap(t *testing.T) {
	store, cleanup := setupTestSQLiteStore(t)
	defer cleanup()

	// Night window: 2024-02-14 18:00 to 2024-02-15 18:00 UTC
	windowStart := time.Date(2024, 2, 14, 18, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 2, 15, 18, 0, 0, 0, time.UTC)

	inside := addTestSleep(t, store, "alice",
		time.Date(2024, 2, 14, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 15, 7, 0, 0, 0, time.UTC))
	straddlesStart := addTestSleep(t, store, "alice",
		time.Date(2024, 2, 14, 15, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 14, 21, 0, 0, 0, time.UTC))
	// Entirely before the window
	addTestSleep(t, store, "alice",
		time.Date(2024, 2, 13, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 14, 7, 0, 0, 0, time.UTC))
	// Same window, different owner
	addTestSleep(t, store, "bob",
		time.Date(2024, 2, 14, 22, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 15, 6, 0, 0, 0, time.UTC))

	intervals, err := store.FindSleepIntervals("alice", windowEnd, windowStart)
	if err != nil {
		t.Fatalf("failed to find sleep intervals: %v", err)
	}

	if len(intervals) != 2 {
		t.Fatalf("expected 2 overlapping intervals, got %d", len(intervals))
	}
	// Ordered by end time, latest first
	if intervals[0].ID != inside.ID {
		t.Errorf("expected latest-ending interval first, got %s", intervals[0].ID)
	}
	if intervals[1].ID != straddlesStart.ID {
		t.Errorf("expected earlier-ending interval second, got %s", intervals[1].ID)
	}
	for _, si := range intervals {
		if si.OwnerID != "alice" {
			t.Error("another owner's interval leaked into the results")
		}
	}
}

func TestSleepTimestampsRoundTrip(t *testing.T) {
	store, cleanup := setupTestSQLiteStore(t)
	defer cleanup()

	warsaw, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	start := time.Date(2024, 2, 14, 23, 30, 0, 0, warsaw)
	end := time.Date(2024, 2, 15, 6, 45, 0, 0, warsaw)
	addTestSleep(t, store, "alice", start, end)

	intervals, err := store.FindSleepIntervals("alice",
		time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("failed to find sleep intervals: %v", err)
	}
	if len(intervals) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(intervals))
	}
	// Stored instants are preserved even when written with a non-UTC offset
	if !intervals[0].Start.Equal(start) {
		t.Errorf("start mismatch: stored %v, want %v", intervals[0].Start, start)
	}
	if !intervals[0].End.Equal(end) {
		t.Errorf("end mismatch: stored %v, want %v", intervals[0].End, end)
	}
}

func TestDeleteSleepIntervalsInWindow(t *testing.T) {
	store, cleanup := setupTestSQLiteStore(t)
	defer cleanup()

	windowStart := time.Date(2024, 2, 14, 18, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 2, 15, 18, 0, 0, 0, time.UTC)

	addTestSleep(t, store, "alice",
		time.Date(2024, 2, 14, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 15, 7, 0, 0, 0, time.UTC))
	outside := addTestSleep(t, store, "alice",
		time.Date(2024, 2, 15, 22, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 16, 6, 0, 0, 0, time.UTC))

	count, err := store.DeleteSleepIntervalsInWindow("alice", windowEnd, windowStart)
	if err != nil {
		t.Fatalf("failed to delete sleep intervals: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 deleted interval, got %d", count)
	}

	remaining, err := store.FindSleepIntervals("alice",
		time.Date(2024, 2, 17, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("failed to find sleep intervals: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != outside.ID {
		t.Errorf("expected only the interval outside the window to remain")
	}
}
