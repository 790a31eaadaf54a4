package sqlite

import (
	"database/sql"
	"errors"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage/storeerr"
)

func (s *Store) FindMood(ownerID, day string) (models.MoodEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, day, mood, note
		FROM mood_entries WHERE owner_id = ? AND day = ?`, ownerID, day)

	var m models.MoodEntry
	err := row.Scan(&m.ID, &m.OwnerID, &m.Day, &m.Mood, &m.Note)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MoodEntry{}, storeerr.ErrNotFound
		}
		return models.MoodEntry{}, err
	}
	return m, nil
}

// UpsertMood overwrites the existing entry for (owner, day) or creates one.
// The ON CONFLICT clause keeps the original row id so references stay stable.
func (s *Store) UpsertMood(m models.MoodEntry) (bool, error) {
	existing, err := s.FindMood(m.OwnerID, m.Day)
	created := errors.Is(err, storeerr.ErrNotFound)
	if err != nil && !created {
		return false, err
	}
	if !created {
		m.ID = existing.ID
	}

	_, err = s.db.Exec(`
		INSERT INTO mood_entries (id, owner_id, day, mood, note)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(owner_id, day) DO UPDATE SET mood = excluded.mood, note = excluded.note`,
		m.ID, m.OwnerID, m.Day, m.Mood, m.Note)
	if err != nil {
		return false, err
	}
	return created, nil
}

func (s *Store) FindMoodsInRange(ownerID, startDay, endDay string) ([]models.MoodEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, day, mood, note
		FROM mood_entries
		WHERE owner_id = ? AND day >= ? AND day <= ?
		ORDER BY day`, ownerID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		var m models.MoodEntry
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.Day, &m.Mood, &m.Note); err != nil {
			return nil, err
		}
		entries = append(entries, m)
	}

	return entries, rows.Err()
}

func (s *Store) DeleteMood(ownerID, day string) error {
	result, err := s.db.Exec(`
		DELETE FROM mood_entries WHERE owner_id = ? AND day = ?`, ownerID, day)
	if err != nil {
		return err
	}
	return requireRow(result)
}
