package storage

import (
	"time"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
)

// Provider is the persistence interface consumed by the tracker core and the
// CLI. Every read and write is scoped to a single owner; implementations must
// never return another owner's rows.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(ownerID, id string) (models.Habit, error)
	GetHabitByName(ownerID, name string) (models.Habit, error)
	GetAllHabits(ownerID string, includeArchived bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(ownerID, id string) error
	UnarchiveHabit(ownerID, id string) error
	DeleteHabit(ownerID, id string) error

	// Habit completions. FindCompletion returns ErrNotFound when no row
	// exists for the key; CreateCompletion returns ErrDuplicate when the
	// (habit_id, day) uniqueness constraint rejects the insert.
	FindCompletion(habitID, day string) (models.HabitCompletion, error)
	CreateCompletion(models.HabitCompletion) error
	DeleteCompletion(id string) error
	FindCompletionsInRange(ownerID, startDay, endDay string) ([]models.HabitCompletion, error)

	// Sleep intervals. FindSleepIntervals is an overlap query: it returns
	// every interval with start < before AND end > after, newest end first.
	AddSleepInterval(models.SleepInterval) error
	FindSleepIntervals(ownerID string, before, after time.Time) ([]models.SleepInterval, error)
	DeleteSleepIntervalsInWindow(ownerID string, before, after time.Time) (int, error)

	// Mood entries. UpsertMood overwrites the existing row for (owner, day)
	// or creates one, reporting whether a new row was created.
	FindMood(ownerID, day string) (models.MoodEntry, error)
	UpsertMood(models.MoodEntry) (created bool, err error)
	FindMoodsInRange(ownerID, startDay, endDay string) ([]models.MoodEntry, error)
	DeleteMood(ownerID, day string) error

	// Utils
	GetConfigPath() string
}
