package models

import "time"

// Habit represents a recurring practice tracked by a single owner
type Habit struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
}

// Archived reports whether the habit has been soft-removed from active lists.
func (h Habit) Archived() bool {
	return h.ArchivedAt != nil
}

// HabitCompletion marks a habit as done on a single day.
// At most one row exists per (habit_id, day); the toggle path creates and
// deletes rows, it never updates one in place.
type HabitCompletion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	Completed bool      `json:"completed"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
