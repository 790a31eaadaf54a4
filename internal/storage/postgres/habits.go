package postgres

import (
	"database/sql"
	"errors"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage/storeerr"
)

func scanHabit(row interface{ Scan(...any) error }) (models.Habit, error) {
	var h models.Habit
	var archivedAt sql.NullTime

	err := row.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Description, &h.CreatedAt, &archivedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, storeerr.ErrNotFound
		}
		return models.Habit{}, err
	}

	if archivedAt.Valid {
		t := archivedAt.Time
		h.ArchivedAt = &t
	}

	return h, nil
}

func (s *Store) AddHabit(habit models.Habit) error {
	var archivedAt sql.NullTime
	if habit.ArchivedAt != nil {
		archivedAt = sql.NullTime{Time: *habit.ArchivedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, owner_id, name, description, created_at, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		habit.ID, habit.OwnerID, habit.Name, habit.Description, habit.CreatedAt, archivedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return storeerr.ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *Store) GetHabit(ownerID, id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, name, description, created_at, archived_at
		FROM habits WHERE id = $1 AND owner_id = $2`, id, ownerID)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(ownerID, name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, name, description, created_at, archived_at
		FROM habits WHERE name = $1 AND owner_id = $2`, name, ownerID)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(ownerID string, includeArchived bool) ([]models.Habit, error) {
	query := `
		SELECT id, owner_id, name, description, created_at, archived_at
		FROM habits WHERE owner_id = $1`
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	var archivedAt sql.NullTime
	if habit.ArchivedAt != nil {
		archivedAt = sql.NullTime{Time: *habit.ArchivedAt, Valid: true}
	}

	result, err := s.db.Exec(`
		UPDATE habits SET name = $1, description = $2, archived_at = $3
		WHERE id = $4 AND owner_id = $5`,
		habit.Name, habit.Description, archivedAt, habit.ID, habit.OwnerID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *Store) ArchiveHabit(ownerID, id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = NOW()
		WHERE id = $1 AND owner_id = $2 AND archived_at IS NULL`, id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *Store) UnarchiveHabit(ownerID, id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = NULL
		WHERE id = $1 AND owner_id = $2 AND archived_at IS NOT NULL`, id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *Store) DeleteHabit(ownerID, id string) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storeerr.ErrNotFound
	}
	return nil
}
