package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage/storeerr"
)

func scanHabit(row interface{ Scan(...any) error }) (models.Habit, error) {
	var h models.Habit
	var createdAt string
	var archivedAt sql.NullString

	err := row.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Description, &createdAt, &archivedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, storeerr.ErrNotFound
		}
		return models.Habit{}, err
	}

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if archivedAt.Valid {
		t, err := time.Parse(time.RFC3339, archivedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse archived_at: %w", err)
		}
		h.ArchivedAt = &t
	}

	return h, nil
}

func (s *Store) AddHabit(habit models.Habit) error {
	var archivedAt sql.NullString
	if habit.ArchivedAt != nil {
		archivedAt = sql.NullString{String: habit.ArchivedAt.UTC().Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, owner_id, name, description, created_at, archived_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.OwnerID, habit.Name, habit.Description,
		habit.CreatedAt.UTC().Format(time.RFC3339), archivedAt)
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
		FROM habits WHERE id = ? AND owner_id = ?`, id, ownerID)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(ownerID, name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, owner_id, name, description, created_at, archived_at
		FROM habits WHERE name = ? AND owner_id = ?`, name, ownerID)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(ownerID string, includeArchived bool) ([]models.Habit, error) {
	query := `
		SELECT id, owner_id, name, description, created_at, archived_at
		FROM habits WHERE owner_id = ?`
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
	var archivedAt sql.NullString
	if habit.ArchivedAt != nil {
		archivedAt = sql.NullString{String: habit.ArchivedAt.UTC().Format(time.RFC3339), Valid: true}
	}

	result, err := s.db.Exec(`
		UPDATE habits SET name = ?, description = ?, archived_at = ?
		WHERE id = ? AND owner_id = ?`,
		habit.Name, habit.Description, archivedAt, habit.ID, habit.OwnerID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *Store) ArchiveHabit(ownerID, id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = ?
		WHERE id = ? AND owner_id = ? AND archived_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339), id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *Store) UnarchiveHabit(ownerID, id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = NULL
		WHERE id = ? AND owner_id = ? AND archived_at IS NOT NULL`,
		id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *Store) DeleteHabit(ownerID, id string) error {
	result, err := s.db.Exec(`DELETE FROM habits WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// requireRow converts a zero-row mutation into ErrNotFound so ownership
// mismatches surface instead of silently doing nothing.
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
