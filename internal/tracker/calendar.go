package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/Z4phxr/Habbit-Tracker/internal/constants"
)

// ViewMode selects how an anchor date is expanded into a calendar bucket
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

var (
	// ErrInvalidDate is returned for anchors or timestamps that do not parse.
	// Display callers recover by substituting today; mutation callers surface it.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidMood is returned for mood values outside the 0..10 scale
	ErrInvalidMood = errors.New("mood must be between 0 and 10")
)

// Bucket is an ordered run of calendar dates plus the anchors for
// backward/forward navigation.
type Bucket struct {
	Dates      []string
	PrevAnchor string
	NextAnchor string
}

// ParseDay parses a YYYY-MM-DD date string. Anything else, including
// ambiguous formats, is rejected with ErrInvalidDate.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, day)
	}
	return t, nil
}

// FormatDay renders a time as a YYYY-MM-DD date string
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// BucketDates expands an anchor date into the bucket for the given view mode.
// Weeks start on Monday; months respect their true length. Pure function of
// its inputs.
func BucketDates(mode ViewMode, anchor string) (Bucket, error) {
	t, err := ParseDay(anchor)
	if err != nil {
		return Bucket{}, err
	}

	switch mode {
	case ViewDay:
		return Bucket{
			Dates:      []string{FormatDay(t)},
			PrevAnchor: FormatDay(t.AddDate(0, 0, -1)),
			NextAnchor: FormatDay(t.AddDate(0, 0, 1)),
		}, nil

	case ViewWeek:
		weekStart := t.AddDate(0, 0, -mondayOffset(t))
		dates := make([]string, 7)
		for i := range dates {
			dates[i] = FormatDay(weekStart.AddDate(0, 0, i))
		}
		return Bucket{
			Dates:      dates,
			PrevAnchor: FormatDay(weekStart.AddDate(0, 0, -7)),
			NextAnchor: FormatDay(weekStart.AddDate(0, 0, 7)),
		}, nil

	case ViewMonth:
		// Month navigation goes through the explicit first-of-month; fixed
		// day offsets would drift on short and long months.
		monthStart := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		nextMonth := monthStart.AddDate(0, 1, 0)
		var dates []string
		for d := monthStart; d.Before(nextMonth); d = d.AddDate(0, 0, 1) {
			dates = append(dates, FormatDay(d))
		}
		return Bucket{
			Dates:      dates,
			PrevAnchor: FormatDay(monthStart.AddDate(0, -1, 0)),
			NextAnchor: FormatDay(nextMonth),
		}, nil

	default:
		return Bucket{}, fmt.Errorf("unknown view mode: %q", mode)
	}
}

// mondayOffset returns the number of days since the most recent Monday
// (Monday=0 .. Sunday=6).
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
