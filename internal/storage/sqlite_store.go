package storage

import (
	"database/sql"
	"time"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to the Provider interface
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a new SQLite-backed store at the given file path
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{store: sqlite.NewStore(path)}
}

// Lifecycle methods
func (s *SQLiteStore) Init() error          { return s.store.Init() }
func (s *SQLiteStore) Load() error          { return s.store.Load() }
func (s *SQLiteStore) Close() error         { return s.store.Close() }
func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }

// GetDB exposes the underlying connection for migrations and diagnostics
func (s *SQLiteStore) GetDB() *sql.DB { return s.store.GetDB() }

// Habits
func (s *SQLiteStore) AddHabit(h models.Habit) error { return s.store.AddHabit(h) }
func (s *SQLiteStore) GetHabit(ownerID, id string) (models.Habit, error) {
	return s.store.GetHabit(ownerID, id)
}
func (s *SQLiteStore) GetHabitByName(ownerID, name string) (models.Habit, error) {
	return s.store.GetHabitByName(ownerID, name)
}
func (s *SQLiteStore) GetAllHabits(ownerID string, includeArchived bool) ([]models.Habit, error) {
	return s.store.GetAllHabits(ownerID, includeArchived)
}
func (s *SQLiteStore) UpdateHabit(h models.Habit) error       { return s.store.UpdateHabit(h) }
func (s *SQLiteStore) ArchiveHabit(ownerID, id string) error  { return s.store.ArchiveHabit(ownerID, id) }
func (s *SQLiteStore) UnarchiveHabit(ownerID, id string) error {
	return s.store.UnarchiveHabit(ownerID, id)
}
func (s *SQLiteStore) DeleteHabit(ownerID, id string) error { return s.store.DeleteHabit(ownerID, id) }

// Habit completions
func (s *SQLiteStore) FindCompletion(habitID, day string) (models.HabitCompletion, error) {
	return s.store.FindCompletion(habitID, day)
}
func (s *SQLiteStore) CreateCompletion(c models.HabitCompletion) error {
	return s.store.CreateCompletion(c)
}
func (s *SQLiteStore) DeleteCompletion(id string) error { return s.store.DeleteCompletion(id) }
func (s *SQLiteStore) FindCompletionsInRange(ownerID, startDay, endDay string) ([]models.HabitCompletion, error) {
	return s.store.FindCompletionsInRange(ownerID, startDay, endDay)
}

// Sleep intervals
func (s *SQLiteStore) AddSleepInterval(si models.SleepInterval) error {
	return s.store.AddSleepInterval(si)
}
func (s *SQLiteStore) FindSleepIntervals(ownerID string, before, after time.Time) ([]models.SleepInterval, error) {
	return s.store.FindSleepIntervals(ownerID, before, after)
}
func (s *SQLiteStore) DeleteSleepIntervalsInWindow(ownerID string, before, after time.Time) (int, error) {
	return s.store.DeleteSleepIntervalsInWindow(ownerID, before, after)
}

// Mood entries
func (s *SQLiteStore) FindMood(ownerID, day string) (models.MoodEntry, error) {
	return s.store.FindMood(ownerID, day)
}
func (s *SQLiteStore) UpsertMood(m models.MoodEntry) (bool, error) { return s.store.UpsertMood(m) }
func (s *SQLiteStore) FindMoodsInRange(ownerID, startDay, endDay string) ([]models.MoodEntry, error) {
	return s.store.FindMoodsInRange(ownerID, startDay, endDay)
}
func (s *SQLiteStore) DeleteMood(ownerID, day string) error { return s.store.DeleteMood(ownerID, day) }
