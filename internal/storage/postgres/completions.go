package postgres

import (
	"database/sql"
	"errors"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage/storeerr"
)

func scanCompletion(row interface{ Scan(...any) error }) (models.HabitCompletion, error) {
	var c models.HabitCompletion
	err := row.Scan(&c.ID, &c.HabitID, &c.Day, &c.Completed, &c.Note, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HabitCompletion{}, storeerr.ErrNotFound
		}
		return models.HabitCompletion{}, err
	}
	return c, nil
}

func (s *Store) FindCompletion(habitID, day string) (models.HabitCompletion, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, day, completed, note, created_at
		FROM habit_completions WHERE habit_id = $1 AND day = $2`, habitID, day)
	return scanCompletion(row)
}

func (s *Store) CreateCompletion(c models.HabitCompletion) error {
	_, err := s.db.Exec(`
		INSERT INTO habit_completions (id, habit_id, day, completed, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.HabitID, c.Day, c.Completed, c.Note, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return storeerr.ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *Store) DeleteCompletion(id string) error {
	result, err := s.db.Exec(`DELETE FROM habit_completions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *Store) FindCompletionsInRange(ownerID, startDay, endDay string) ([]models.HabitCompletion, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.habit_id, c.day, c.completed, c.note, c.created_at
		FROM habit_completions c
		JOIN habits h ON h.id = c.habit_id
		WHERE h.owner_id = $1 AND c.day >= $2 AND c.day <= $3
		ORDER BY c.day`, ownerID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.HabitCompletion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}

	return completions, rows.Err()
}
