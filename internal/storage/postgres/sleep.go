package postgres

import (
	"fmt"
	"time"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
)

func (s *Store) AddSleepInterval(si models.SleepInterval) error {
	if !si.End.After(si.Start) {
		return fmt.Errorf("sleep interval end (%s) must be after start (%s)",
			si.End.Format(time.RFC3339), si.Start.Format(time.RFC3339))
	}

	_, err := s.db.Exec(`
		INSERT INTO sleep_intervals (id, owner_id, start_at, end_at)
		VALUES ($1, $2, $3, $4)`,
		si.ID, si.OwnerID, si.Start, si.End)
	return err
}

func (s *Store) FindSleepIntervals(ownerID string, before, after time.Time) ([]models.SleepInterval, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, start_at, end_at
		FROM sleep_intervals
		WHERE owner_id = $1 AND start_at < $2 AND end_at > $3
		ORDER BY end_at DESC`, ownerID, before, after)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intervals []models.SleepInterval
	for rows.Next() {
		var si models.SleepInterval
		if err := rows.Scan(&si.ID, &si.OwnerID, &si.Start, &si.End); err != nil {
			return nil, err
		}
		intervals = append(intervals, si)
	}

	return intervals, rows.Err()
}

func (s *Store) DeleteSleepIntervalsInWindow(ownerID string, before, after time.Time) (int, error) {
	result, err := s.db.Exec(`
		DELETE FROM sleep_intervals
		WHERE owner_id = $1 AND start_at < $2 AND end_at > $3`, ownerID, before, after)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	return int(n), err
}
