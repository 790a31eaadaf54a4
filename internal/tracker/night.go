package tracker

import (
	"fmt"
	"time"

	"github.com/Z4phxr/Habbit-Tracker/internal/constants"
	"github.com/Z4phxr/Habbit-Tracker/internal/models"
)

// SleepSource is the slice of the persistence interface the resolver needs:
// an overlap query returning every interval with start < before AND end > after.
type SleepSource interface {
	FindSleepIntervals(ownerID string, before, after time.Time) ([]models.SleepInterval, error)
}

// NightBlock is one hourly segment of a night window
type NightBlock struct {
	Label string // wall-clock start of the block (HH:MM)
	Slept bool
}

// Night is the occupancy profile of a single night window
type Night struct {
	Anchor     string
	Blocks     []NightBlock
	HourLabels []string // one label per block start plus the trailing boundary
	Total      time.Duration
	TotalLabel string // "7h 30min", or the no-data sentinel
}

// Resolver reduces stored sleep intervals to hourly night occupancy
type Resolver struct {
	store SleepSource
	loc   *time.Location
}

// NewResolver creates a resolver computing night windows in the given
// timezone. A nil location falls back to time.Local.
func NewResolver(store SleepSource, loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{store: store, loc: loc}
}

// Window returns the night window anchored at the given calendar date:
// 18:00 on the anchor date through 18:00 the following day. The forward
// convention means the window ending the evening of wake-up date W is
// anchored at W-1; WakeAnchor does that mapping.
func (r *Resolver) Window(anchor string) (time.Time, time.Time, error) {
	d, err := ParseDay(anchor)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(d.Year(), d.Month(), d.Day(), constants.NightStartHour, 0, 0, 0, r.loc)
	return start, start.Add(constants.NightHours * time.Hour), nil
}

// WakeAnchor maps a user-visible wake-up date to the anchor of the night
// window that ended that day.
func WakeAnchor(wakeDay string) (string, error) {
	d, err := ParseDay(wakeDay)
	if err != nil {
		return "", err
	}
	return FormatDay(d.AddDate(0, 0, -1)), nil
}

// ResolveNight finds the owner's sleep interval for the night anchored at the
// given date and renders it as hourly occupancy blocks. When several stored
// intervals overlap the window, only the one with the latest end contributes;
// a later entry supersedes an earlier correction without requiring a delete.
// No overlapping interval at all is a normal outcome: all blocks false, zero
// duration, sentinel label.
func (r *Resolver) ResolveNight(ownerID, anchor string) (Night, error) {
	nightStart, nightEnd, err := r.Window(anchor)
	if err != nil {
		return Night{}, err
	}

	intervals, err := r.store.FindSleepIntervals(ownerID, nightEnd, nightStart)
	if err != nil {
		return Night{}, fmt.Errorf("failed to query sleep intervals: %w", err)
	}

	var selected *models.SleepInterval
	for i := range intervals {
		if selected == nil || intervals[i].End.After(selected.End) {
			selected = &intervals[i]
		}
	}

	var total time.Duration
	if selected != nil {
		overlapStart := maxTime(selected.Start, nightStart)
		overlapEnd := minTime(selected.End, nightEnd)
		if d := overlapEnd.Sub(overlapStart); d > 0 {
			total = d
		}
	}

	blocks := make([]NightBlock, 0, constants.NightHours)
	labels := make([]string, 0, constants.NightHours+1)
	for current := nightStart; current.Before(nightEnd); current = current.Add(time.Hour) {
		blockEnd := current.Add(time.Hour)
		slept := selected != nil &&
			selected.Start.Before(blockEnd) && selected.End.After(current)
		blocks = append(blocks, NightBlock{
			Label: current.Format(constants.TimeFormat),
			Slept: slept,
		})
		labels = append(labels, current.Format(constants.TimeFormat))
	}
	labels = append(labels, nightEnd.Format(constants.TimeFormat))

	return Night{
		Anchor:     anchor,
		Blocks:     blocks,
		HourLabels: labels,
		Total:      total,
		TotalLabel: formatSleepTotal(total),
	}, nil
}

// formatSleepTotal renders a slept duration as "7h 30min", or the sentinel
// when nothing was slept.
func formatSleepTotal(d time.Duration) string {
	if d <= 0 {
		return constants.NoSleepLabel
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dmin", hours, minutes)
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
