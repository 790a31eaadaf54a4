package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Z4phxr/Habbit-Tracker/internal/constants"
	"github.com/Z4phxr/Habbit-Tracker/internal/models"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage"
)

// Outcome reports which branch of a toggle ran
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeRemoved Outcome = "removed"
)

// LedgerStore is the slice of the persistence interface the ledger needs
type LedgerStore interface {
	GetHabit(ownerID, id string) (models.Habit, error)
	FindCompletion(habitID, day string) (models.HabitCompletion, error)
	CreateCompletion(models.HabitCompletion) error
	DeleteCompletion(id string) error
	FindMood(ownerID, day string) (models.MoodEntry, error)
	UpsertMood(models.MoodEntry) (bool, error)
}

// Ledger performs the idempotent-in-pairs completion toggle and the mood
// upsert. It holds no state of its own; the store's uniqueness constraints
// arbitrate races.
type Ledger struct {
	store LedgerStore
}

// NewLedger creates a ledger over the given store
func NewLedger(store LedgerStore) *Ledger {
	return &Ledger{store: store}
}

// Toggle flips the completion marker for (habit, day): absent rows are
// created, present rows are deleted. Successive calls on the same key
// strictly alternate outcomes. The habit must belong to the owner;
// storage.ErrNotFound surfaces otherwise, never partial data.
func (l *Ledger) Toggle(ownerID, habitID, day string) (Outcome, error) {
	if _, err := ParseDay(day); err != nil {
		return "", err
	}

	if _, err := l.store.GetHabit(ownerID, habitID); err != nil {
		return "", err
	}

	existing, err := l.store.FindCompletion(habitID, day)
	if err == nil {
		if err := l.store.DeleteCompletion(existing.ID); err != nil {
			return "", fmt.Errorf("failed to remove completion: %w", err)
		}
		return OutcomeRemoved, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}

	completion := models.HabitCompletion{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Day:       day,
		Completed: true,
		CreatedAt: time.Now(),
	}
	err = l.store.CreateCompletion(completion)
	if err == nil {
		return OutcomeCreated, nil
	}
	if !errors.Is(err, storage.ErrDuplicate) {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	// A concurrent toggle won the insert. Behave as if that row had been
	// observed up front: remove it and report the removal.
	raced, err := l.store.FindCompletion(habitID, day)
	if err == nil {
		if err := l.store.DeleteCompletion(raced.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("failed to remove completion: %w", err)
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}
	return OutcomeRemoved, nil
}

// UpsertMood records the mood score for (owner, day), overwriting any
// existing entry. Returns the canonical record id and whether a new row was
// created. Unlike Toggle this is a true upsert: repeated calls converge on
// the last written value.
func (l *Ledger) UpsertMood(ownerID, day string, mood int, note string) (string, bool, error) {
	if mood < constants.MoodMin || mood > constants.MoodMax {
		return "", false, fmt.Errorf("%w: got %d", ErrInvalidMood, mood)
	}
	if _, err := ParseDay(day); err != nil {
		return "", false, err
	}

	entry := models.MoodEntry{
		ID:      uuid.New().String(),
		OwnerID: ownerID,
		Day:     day,
		Mood:    mood,
		Note:    note,
	}
	created, err := l.store.UpsertMood(entry)
	if err != nil {
		return "", false, fmt.Errorf("failed to upsert mood: %w", err)
	}

	// Re-read for the canonical id: an update keeps the original row's id
	stored, err := l.store.FindMood(ownerID, day)
	if err != nil {
		return "", false, err
	}
	return stored.ID, created, nil
}
