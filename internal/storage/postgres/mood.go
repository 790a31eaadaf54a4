package postgres

import (
	"database/sql"
	"errors"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage/storeerr"
)

func (s *Store) FindMood(ownerID, day string) (models.MoodEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, day, mood, note
		FROM mood_entries WHERE owner_id = $1 AND day = $2`, ownerID, day)

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
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner_id, day) DO UPDATE SET mood = EXCLUDED.mood, note = EXCLUDED.note`,
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
		WHERE owner_id = $1 AND day >= $2 AND day <= $3
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
		DELETE FROM mood_entries WHERE owner_id = $1 AND day = $2`, ownerID, day)
	if err != nil {
		return err
	}
	return requireRow(result)
}
