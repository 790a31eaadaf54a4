package tracker

import (
	"fmt"
	"time"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
)

// ViewStore is the slice of the persistence interface the view assembler
// reads from. All queries are owner-scoped; the assembler never aggregates
// across owners.
type ViewStore interface {
	GetAllHabits(ownerID string, includeArchived bool) ([]models.Habit, error)
	FindCompletionsInRange(ownerID, startDay, endDay string) ([]models.HabitCompletion, error)
	FindSleepIntervals(ownerID string, before, after time.Time) ([]models.SleepInterval, error)
	FindMoodsInRange(ownerID, startDay, endDay string) ([]models.MoodEntry, error)
}

// HabitGrid is the habit completion view for one bucket of dates
type HabitGrid struct {
	Bucket
	Habits []models.Habit
	// Done is keyed "<habitID>-<day>"; only completed days appear
	Done  map[string]bool
	Title string
}

// DoneKey builds the lookup key used by HabitGrid.Done
func DoneKey(habitID, day string) string {
	return habitID + "-" + day
}

// SleepSheet is one resolved night per display date in the bucket. A display
// date's night is the window that ended that morning (anchor = date - 1).
type SleepSheet struct {
	Bucket
	Nights     []Night
	HourLabels []string
	Title      string
}

// MoodCalendar is the per-date mood view for one bucket. Entries align with
// Bucket.Dates; a nil entry means no record, which is distinct from a
// recorded zero.
type MoodCalendar struct {
	Bucket
	Entries []*models.MoodEntry
	// LeadingEmpty is the number of blank cells before the first date in a
	// Monday-first month layout
	LeadingEmpty int
	Title        string
}

// Assembler pulls persisted records into per-date view structures for the
// presentation layer.
type Assembler struct {
	store    ViewStore
	resolver *Resolver
	loc      *time.Location
	// now is swappable for tests
	now func() time.Time
}

// NewAssembler creates a view assembler. The location governs both "today"
// substitution and night-window construction.
func NewAssembler(store ViewStore, loc *time.Location) *Assembler {
	if loc == nil {
		loc = time.Local
	}
	return &Assembler{
		store:    store,
		resolver: NewResolver(store, loc),
		loc:      loc,
		now:      time.Now,
	}
}

// normalizeAnchor substitutes today for empty or unparseable anchors. This is
// the display-path recovery; mutation paths reject bad dates instead.
func (a *Assembler) normalizeAnchor(anchor string) string {
	if anchor == "" {
		return FormatDay(a.now().In(a.loc))
	}
	if _, err := ParseDay(anchor); err != nil {
		return FormatDay(a.now().In(a.loc))
	}
	return anchor
}

// HabitGrid assembles active habits against the bucket's dates with their
// completion markers.
func (a *Assembler) HabitGrid(ownerID string, mode ViewMode, anchor string) (HabitGrid, error) {
	bucket, err := BucketDates(mode, a.normalizeAnchor(anchor))
	if err != nil {
		return HabitGrid{}, err
	}

	habits, err := a.store.GetAllHabits(ownerID, false)
	if err != nil {
		return HabitGrid{}, fmt.Errorf("failed to load habits: %w", err)
	}

	completions, err := a.store.FindCompletionsInRange(ownerID, bucket.Dates[0], bucket.Dates[len(bucket.Dates)-1])
	if err != nil {
		return HabitGrid{}, fmt.Errorf("failed to load completions: %w", err)
	}

	done := make(map[string]bool, len(completions))
	for _, c := range completions {
		if c.Completed {
			done[DoneKey(c.HabitID, c.Day)] = true
		}
	}

	return HabitGrid{
		Bucket: bucket,
		Habits: habits,
		Done:   done,
		Title:  bucketTitle(mode, bucket),
	}, nil
}

// SleepSheet resolves one night per display date in the bucket
func (a *Assembler) SleepSheet(ownerID string, mode ViewMode, anchor string) (SleepSheet, error) {
	bucket, err := BucketDates(mode, a.normalizeAnchor(anchor))
	if err != nil {
		return SleepSheet{}, err
	}

	nights := make([]Night, 0, len(bucket.Dates))
	var hourLabels []string
	for _, day := range bucket.Dates {
		nightAnchor, err := WakeAnchor(day)
		if err != nil {
			return SleepSheet{}, err
		}
		night, err := a.resolver.ResolveNight(ownerID, nightAnchor)
		if err != nil {
			return SleepSheet{}, err
		}
		nights = append(nights, night)
		if hourLabels == nil {
			hourLabels = night.HourLabels
		}
	}

	return SleepSheet{
		Bucket:     bucket,
		Nights:     nights,
		HourLabels: hourLabels,
		Title:      bucketTitle(mode, bucket),
	}, nil
}

// MoodCalendar assembles per-date mood entries, preserving the distinction
// between an absent record and a recorded zero.
func (a *Assembler) MoodCalendar(ownerID string, mode ViewMode, anchor string) (MoodCalendar, error) {
	bucket, err := BucketDates(mode, a.normalizeAnchor(anchor))
	if err != nil {
		return MoodCalendar{}, err
	}

	moods, err := a.store.FindMoodsInRange(ownerID, bucket.Dates[0], bucket.Dates[len(bucket.Dates)-1])
	if err != nil {
		return MoodCalendar{}, fmt.Errorf("failed to load moods: %w", err)
	}

	byDay := make(map[string]*models.MoodEntry, len(moods))
	for i := range moods {
		byDay[moods[i].Day] = &moods[i]
	}

	entries := make([]*models.MoodEntry, len(bucket.Dates))
	for i, day := range bucket.Dates {
		entries[i] = byDay[day]
	}

	leadingEmpty := 0
	if mode == ViewMonth {
		first, err := ParseDay(bucket.Dates[0])
		if err != nil {
			return MoodCalendar{}, err
		}
		leadingEmpty = mondayOffset(first)
	}

	return MoodCalendar{
		Bucket:       bucket,
		Entries:      entries,
		LeadingEmpty: leadingEmpty,
		Title:        bucketTitle(mode, bucket),
	}, nil
}

// bucketTitle renders the human heading for a bucket: "02 Jan 2026" for a
// day, "30 Dec – 05 Jan 2026" for a week, "January 2026" for a month.
func bucketTitle(mode ViewMode, bucket Bucket) string {
	first, err := ParseDay(bucket.Dates[0])
	if err != nil {
		return ""
	}
	switch mode {
	case ViewWeek:
		last, err := ParseDay(bucket.Dates[len(bucket.Dates)-1])
		if err != nil {
			return ""
		}
		return fmt.Sprintf("%s – %s", first.Format("02 Jan"), last.Format("02 Jan 2006"))
	case ViewMonth:
		return first.Format("January 2006")
	default:
		return first.Format("02 Jan 2006")
	}
}
