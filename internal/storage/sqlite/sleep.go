package sqlite

import (
	"fmt"
	"time"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
)

// Timestamps are stored as RFC3339 strings normalized to UTC so that the
// lexicographic comparisons in the overlap queries order chronologically.

func (s *Store) AddSleepInterval(si models.SleepInterval) error {
	if !si.End.After(si.Start) {
		return fmt.Errorf("sleep interval end (%s) must be after start (%s)",
			si.End.Format(time.RFC3339), si.Start.Format(time.RFC3339))
	}

	_, err := s.db.Exec(`
		INSERT INTO sleep_intervals (id, owner_id, start_at, end_at)
		VALUES (?, ?, ?, ?)`,
		si.ID, si.OwnerID,
		si.Start.UTC().Format(time.RFC3339),
		si.End.UTC().Format(time.RFC3339))
	return err
}

// FindSleepIntervals returns the owner's intervals overlapping (after, before),
// i.e. start < before AND end > after, ordered newest end first.
func (s *Store) FindSleepIntervals(ownerID string, before, after time.Time) ([]models.SleepInterval, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, start_at, end_at
		FROM sleep_intervals
		WHERE owner_id = ? AND start_at < ? AND end_at > ?
		ORDER BY end_at DESC`,
		ownerID,
		before.UTC().Format(time.RFC3339),
		after.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intervals []models.SleepInterval
	for rows.Next() {
		var si models.SleepInterval
		var startAt, endAt string
		if err := rows.Scan(&si.ID, &si.OwnerID, &startAt, &endAt); err != nil {
			return nil, err
		}
		si.Start, err = time.Parse(time.RFC3339, startAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start_at for interval %s: %w", si.ID, err)
		}
		si.End, err = time.Parse(time.RFC3339, endAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end_at for interval %s: %w", si.ID, err)
		}
		intervals = append(intervals, si)
	}

	return intervals, rows.Err()
}

// DeleteSleepIntervalsInWindow removes every interval overlapping the window
// and returns the number of rows deleted.
func (s *Store) DeleteSleepIntervalsInWindow(ownerID string, before, after time.Time) (int, error) {
	result, err := s.db.Exec(`
		DELETE FROM sleep_intervals
		WHERE owner_id = ? AND start_at < ? AND end_at > ?`,
		ownerID,
		before.UTC().Format(time.RFC3339),
		after.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	return int(n), err
}
