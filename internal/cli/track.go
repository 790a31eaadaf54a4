package cli

import (
	"fmt"

	"github.com/Z4phxr/Habbit-Tracker/internal/constants"
	"github.com/Z4phxr/Habbit-Tracker/internal/tracker"
)

// TrackCmd is the unified read-only view: one section, one period, one anchor
type TrackCmd struct {
	Section string `arg:"" optional:"" help:"Section to show: habits, sleep, or mood." default:"habits" enum:"habits,sleep,mood"`
	Period  string `help:"Period to show: day, week, or month." default:"week" enum:"day,week,month"`
	Date    string `help:"Anchor date in YYYY-MM-DD format (default: today)." default:""`
	Prev    bool   `help:"Show the bucket before the anchor."`
	Next    bool   `help:"Show the bucket after the anchor."`
}

func (c *TrackCmd) Run(ctx *Context) error {
	mode, err := ParsePeriod(c.Period)
	if err != nil {
		return err
	}

	anchor := c.Date
	if c.Prev || c.Next {
		anchor, err = c.shiftAnchor(ctx, mode, anchor)
		if err != nil {
			return err
		}
	}

	switch constants.ViewSection(c.Section) {
	case constants.SectionHabits:
		grid, err := ctx.Assembler().HabitGrid(ctx.Owner, mode, anchor)
		if err != nil {
			return err
		}
		fmt.Println(RenderHabitGrid(grid))
	case constants.SectionSleep:
		sheet, err := ctx.Assembler().SleepSheet(ctx.Owner, mode, anchor)
		if err != nil {
			return err
		}
		fmt.Println(RenderSleepSheet(sheet))
	case constants.SectionMood:
		cal, err := ctx.Assembler().MoodCalendar(ctx.Owner, mode, anchor)
		if err != nil {
			return err
		}
		fmt.Println(RenderMoodCalendar(cal, mode))
	default:
		return fmt.Errorf("invalid section: %s (expected habits, sleep, or mood)", c.Section)
	}

	return nil
}

// shiftAnchor walks the anchor one bucket backward or forward using the
// bucket's own navigation anchors
func (c *TrackCmd) shiftAnchor(ctx *Context, mode tracker.ViewMode, anchor string) (string, error) {
	if c.Prev && c.Next {
		return "", fmt.Errorf("--prev and --next are mutually exclusive")
	}
	if anchor == "" {
		anchor = ctx.Today()
	}
	bucket, err := tracker.BucketDates(mode, anchor)
	if err != nil {
		return "", err
	}
	if c.Prev {
		return bucket.PrevAnchor, nil
	}
	return bucket.NextAnchor, nil
}
