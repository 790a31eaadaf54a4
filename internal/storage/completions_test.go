package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
)

func TestCompletionUniquePerDay(t *testing.T) {
	store, cleanup := setupTestSQLiteStore(t)
	defer cleanup()

	habit := addTestHabit(t, store, "alice", "Read")

	first := models.HabitCompletion{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Day:       "2024-02-15",
		Completed: true,
		CreatedAt: time.Now(),
	}
	if err := store.CreateCompletion(first); err != nil {
		t.Fatalf("failed to create completion: %v", err)
	}

	// Second row for the same (habit, day) violates the uniqueness constraint
	second := models.HabitCompletion{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Day:       "2024-02-15",
		Completed: true,
		CreatedAt: time.Now(),
	}
	if err := store.CreateCompletion(second); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	// A different day is fine
	other := models.HabitCompletion{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Day:       "2024-02-16",
		Completed: true,
		CreatedAt: time.Now(),
	}
	if err := store.CreateCompletion(other); err != nil {
		t.Errorf("different day should not conflict: %v", err)
	}
}

func TestFindAndDeleteCompletion(t *testing.T) {
	store, cleanup := setupTestSQLiteStore(t)
	defer cleanup()

	habit := addTestHabit(t, store, "alice", "Run")

	completion := models.HabitCompletion{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Day:       "2024-02-15",
		Completed: true,
		Note:      "5k in the park",
		CreatedAt: time.Now(),
	}
	if err := store.CreateCompletion(completion); err != nil {
		t.Fatalf("failed to create completion: %v", err)
	}

	found, err := store.FindCompletion(habit.ID, "2024-02-15")
	if err != nil {
		t.Fatalf("failed to find completion: %v", err)
	}
	if found.ID != completion.ID {
		t.Errorf("expected ID %q, got %q", completion.ID, found.ID)
	}
	if !found.Completed {
		t.Error("completion should be marked completed")
	}
	if found.Note != completion.Note {
		t.Errorf("expected note %q, got %q", completion.Note, found.Note)
	}

	if err := store.DeleteCompletion(found.ID); err != nil {
		t.Fatalf("failed to delete completion: %v", err)
	}

	if _, err := store.FindCompletion(habit.ID, "2024-02-15"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestFindCompletionsInRange(t *testing.T) {
	store, cleanup := setupTestSQLiteStore(t)
	defer cleanup()

	aliceHabit := addTestHabit(t, store, "alice", "Read")
	bobHabit := addTestHabit(t, store, "bob", "Read")

	days := []string{"2024-02-10", "2024-02-14", "2024-02-20"}
	for _, day := range days {
		if err := store.CreateCompletion(models.HabitCompletion{
			ID:        uuid.New().String(),
			HabitID:   aliceHabit.ID,
			Day:       day,
			Completed: true,
			CreatedAt: time.Now(),
		}); err != nil {
			t.Fatalf("failed to create completion for %s: %v", day, err)
		}
	}
	// Bob's completion inside the range must not leak into Alice's results
	if err := store.CreateCompletion(models.HabitCompletion{
		ID:        uuid.New().String(),
		HabitID:   bobHabit.ID,
		Day:       "2024-02-14",
		Completed: true,
		CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("failed to create completion: %v", err)
	}

	completions, err := store.FindCompletionsInRange("alice", "2024-02-12", "2024-02-18")
	if err != nil {
		t.Fatalf("failed to find completions: %v", err)
	}
	if len(completions) != 1 {
		t.Fatalf("expected 1 completion in range, got %d", len(completions))
	}
	if completions[0].Day != "2024-02-14" {
		t.Errorf("expected day 2024-02-14, got %s", completions[0].Day)
	}
	if completions[0].HabitID != aliceHabit.ID {
		t.Error("range query returned another owner's completion")
	}
}
