package storage

import (
	"database/sql"
	"net/url"
	"strings"
	"time"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage/postgres"
)

// PostgresStore adapts postgres.Store to the Provider interface
type PostgresStore struct {
	store *postgres.Store
}

// NewPostgresStore creates a new PostgreSQL-backed store from a connection
// string. Credentials must come from the environment, .pgpass, or the OS
// keyring, never the string itself.
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{store: postgres.New(connStr)}
}

// HasEmbeddedCredentials reports whether a connection string carries an
// embedded password.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		_, hasPassword := u.User.Password()
		return hasPassword
	}
	return strings.Contains(connStr, "password=")
}

// Lifecycle methods
func (s *PostgresStore) Init() error          { return s.store.Init() }
func (s *PostgresStore) Load() error          { return s.store.Load() }
func (s *PostgresStore) Close() error         { return s.store.Close() }
func (s *PostgresStore) GetConfigPath() string { return s.store.GetConfigPath() }

// GetDB exposes the underlying connection for migrations and diagnostics
func (s *PostgresStore) GetDB() *sql.DB { return s.store.GetDB() }

// Habits
func (s *PostgresStore) AddHabit(h models.Habit) error { return s.store.AddHabit(h) }
func (s *PostgresStore) GetHabit(ownerID, id string) (models.Habit, error) {
	return s.store.GetHabit(ownerID, id)
}
func (s *PostgresStore) GetHabitByName(ownerID, name string) (models.Habit, error) {
	return s.store.GetHabitByName(ownerID, name)
}
func (s *PostgresStore) GetAllHabits(ownerID string, includeArchived bool) ([]models.Habit, error) {
	return s.store.GetAllHabits(ownerID, includeArchived)
}
func (s *PostgresStore) UpdateHabit(h models.Habit) error { return s.store.UpdateHabit(h) }
func (s *PostgresStore) ArchiveHabit(ownerID, id string) error {
	return s.store.ArchiveHabit(ownerID, id)
}
func (s *PostgresStore) UnarchiveHabit(ownerID, id string) error {
	return s.store.UnarchiveHabit(ownerID, id)
}
func (s *PostgresStore) DeleteHabit(ownerID, id string) error {
	return s.store.DeleteHabit(ownerID, id)
}

// Habit completions
func (s *PostgresStore) FindCompletion(habitID, day string) (models.HabitCompletion, error) {
	return s.store.FindCompletion(habitID, day)
}
func (s *PostgresStore) CreateCompletion(c models.HabitCompletion) error {
	return s.store.CreateCompletion(c)
}
func (s *PostgresStore) DeleteCompletion(id string) error { return s.store.DeleteCompletion(id) }
func (s *PostgresStore) FindCompletionsInRange(ownerID, startDay, endDay string) ([]models.HabitCompletion, error) {
	return s.store.FindCompletionsInRange(ownerID, startDay, endDay)
}

// Sleep intervals
func (s *PostgresStore) AddSleepInterval(si models.SleepInterval) error {
	return s.store.AddSleepInterval(si)
}
func (s *PostgresStore) FindSleepIntervals(ownerID string, before, after time.Time) ([]models.SleepInterval, error) {
	return s.store.FindSleepIntervals(ownerID, before, after)
}
func (s *PostgresStore) DeleteSleepIntervalsInWindow(ownerID string, before, after time.Time) (int, error) {
	return s.store.DeleteSleepIntervalsInWindow(ownerID, before, after)
}

// Mood entries
func (s *PostgresStore) FindMood(ownerID, day string) (models.MoodEntry, error) {
	return s.store.FindMood(ownerID, day)
}
func (s *PostgresStore) UpsertMood(m models.MoodEntry) (bool, error) { return s.store.UpsertMood(m) }
func (s *PostgresStore) FindMoodsInRange(ownerID, startDay, endDay string) ([]models.MoodEntry, error) {
	return s.store.FindMoodsInRange(ownerID, startDay, endDay)
}
func (s *PostgresStore) DeleteMood(ownerID, day string) error { return s.store.DeleteMood(ownerID, day) }
