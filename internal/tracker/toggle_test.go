package tracker

import (
	"errors"
	"testing"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage"
)

// fakeLedgerStore backs the ledger with maps and the same sentinel errors the
// real stores return.
type fakeLedgerStore struct {
	habits      map[string]models.Habit           // id -> habit
	completions map[string]models.HabitCompletion // habitID-day -> row
	moods       map[string]models.MoodEntry       // ownerID-day -> row

	failNextCreate error
	hideFirstFind  bool
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{
		habits:      make(map[string]models.Habit),
		completions: make(map[string]models.HabitCompletion),
		moods:       make(map[string]models.MoodEntry),
	}
}

func (f *fakeLedgerStore) GetHabit(ownerID, id string) (models.Habit, error) {
	h, ok := f.habits[id]
	if !ok || h.OwnerID != ownerID {
		return models.Habit{}, storage.ErrNotFound
	}
	return h, nil
}

func (f *fakeLedgerStore) FindCompletion(habitID, day string) (models.HabitCompletion, error) {
	if f.hideFirstFind {
		f.hideFirstFind = false
		return models.HabitCompletion{}, storage.ErrNotFound
	}
	c, ok := f.completions[habitID+"-"+day]
	if !ok {
		return models.HabitCompletion{}, storage.ErrNotFound
	}
	return c, nil
}

func (f *fakeLedgerStore) CreateCompletion(c models.HabitCompletion) error {
	if f.failNextCreate != nil {
		err := f.failNextCreate
		f.failNextCreate = nil
		return err
	}
	key := c.HabitID + "-" + c.Day
	if _, exists := f.completions[key]; exists {
		return storage.ErrDuplicate
	}
	f.completions[key] = c
	return nil
}

func (f *fakeLedgerStore) DeleteCompletion(id string) error {
	for key, c := range f.completions {
		if c.ID == id {
			delete(f.completions, key)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeLedgerStore) FindMood(ownerID, day string) (models.MoodEntry, error) {
	m, ok := f.moods[ownerID+"-"+day]
	if !ok {
		return models.MoodEntry{}, storage.ErrNotFound
	}
	return m, nil
}

func (f *fakeLedgerStore) UpsertMood(m models.MoodEntry) (bool, error) {
	key := m.OwnerID + "-" + m.Day
	if existing, ok := f.moods[key]; ok {
		existing.Mood = m.Mood
		existing.Note = m.Note
		f.moods[key] = existing
		return false, nil
	}
	f.moods[key] = m
	return true, nil
}

func setupLedger() (*Ledger, *fakeLedgerStore) {
	store := newFakeLedgerStore()
	store.habits["h1"] = models.Habit{ID: "h1", OwnerID: "alice", Name: "Read"}
	return NewLedger(store), store
}

func TestToggleAlternates(t *testing.T) {
	ledger, _ := setupLedger()

	outcomes := []Outcome{OutcomeCreated, OutcomeRemoved, OutcomeCreated}
	for i, want := range outcomes {
		got, err := ledger.Toggle("alice", "h1", "2024-02-15")
		if err != nil {
			t.Fatalf("toggle %d failed: %v", i+1, err)
		}
		if got != want {
			t.Errorf("toggle %d: outcome = %q, want %q", i+1, got, want)
		}
	}
}

func TestToggleCreatesCompletedRow(t *testing.T) {
	ledger, store := setupLedger()

	if _, err := ledger.Toggle("alice", "h1", "2024-02-15"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	c, err := store.FindCompletion("h1", "2024-02-15")
	if err != nil {
		t.Fatalf("expected completion row: %v", err)
	}
	if !c.Completed {
		t.Error("created completion should be marked completed")
	}
	if c.ID == "" {
		t.Error("created completion should have an id")
	}
}

func TestToggleIndependentDates(t *testing.T) {
	ledger, _ := setupLedger()

	if _, err := ledger.Toggle("alice", "h1", "2024-02-15"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	got, err := ledger.Toggle("alice", "h1", "2024-02-16")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if got != OutcomeCreated {
		t.Errorf("a different date is a fresh key, got %q", got)
	}
}

func TestToggleWrongOwner(t *testing.T) {
	ledger, store := setupLedger()

	_, err := ledger.Toggle("mallory", "h1", "2024-02-15")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign habit, got %v", err)
	}
	if len(store.completions) != 0 {
		t.Error("no completion may be written for a foreign habit")
	}
}

func TestToggleUnknownHabit(t *testing.T) {
	ledger, _ := setupLedger()

	_, err := ledger.Toggle("alice", "nope", "2024-02-15")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleInvalidDate(t *testing.T) {
	ledger, _ := setupLedger()

	_, err := ledger.Toggle("alice", "h1", "Feb 15, 2024")
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestToggleRacingDuplicate(t *testing.T) {
	ledger, store := setupLedger()

	// Simulate a concurrent toggle winning the insert: the first find misses,
	// the create is rejected by the uniqueness constraint, and the re-find
	// observes the racing row.
	store.completions["h1-2024-02-15"] = models.HabitCompletion{
		ID: "raced", HabitID: "h1", Day: "2024-02-15", Completed: true,
	}
	store.hideFirstFind = true
	store.failNextCreate = storage.ErrDuplicate

	got, err := ledger.Toggle("alice", "h1", "2024-02-15")
	if err != nil {
		t.Fatalf("racing duplicate must not be fatal: %v", err)
	}
	if got != OutcomeRemoved {
		t.Errorf("outcome = %q, want %q", got, OutcomeRemoved)
	}
	if len(store.completions) != 0 {
		t.Error("racing row should have been removed")
	}
}

func TestUpsertMoodCreatesThenUpdates(t *testing.T) {
	ledger, store := setupLedger()

	id1, created, err := ledger.UpsertMood("alice", "2024-02-15", 7, "good day")
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if !created {
		t.Error("first upsert should create")
	}

	id2, created, err := ledger.UpsertMood("alice", "2024-02-15", 3, "")
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if created {
		t.Error("second upsert should update, not create")
	}
	if id1 != id2 {
		t.Errorf("record id changed across upserts: %q != %q", id1, id2)
	}

	if len(store.moods) != 1 {
		t.Fatalf("expected exactly one mood row, got %d", len(store.moods))
	}
	m, err := store.FindMood("alice", "2024-02-15")
	if err != nil {
		t.Fatalf("expected mood row: %v", err)
	}
	if m.Mood != 3 {
		t.Errorf("mood = %d, want the second call's value 3", m.Mood)
	}
}

func TestUpsertMoodBounds(t *testing.T) {
	ledger, _ := setupLedger()

	for _, mood := range []int{-1, 11, 100} {
		if _, _, err := ledger.UpsertMood("alice", "2024-02-15", mood, ""); !errors.Is(err, ErrInvalidMood) {
			t.Errorf("mood %d: expected ErrInvalidMood, got %v", mood, err)
		}
	}

	// The scale is inclusive at both ends; zero is a real value, not absence
	for _, mood := range []int{0, 10} {
		if _, _, err := ledger.UpsertMood("alice", "2024-02-15", mood, ""); err != nil {
			t.Errorf("mood %d: unexpected error %v", mood, err)
		}
	}
}

func TestUpsertMoodInvalidDate(t *testing.T) {
	ledger, _ := setupLedger()

	_, _, err := ledger.UpsertMood("alice", "15.02.2024", 5, "")
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
