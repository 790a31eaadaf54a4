package cli

import (
	"errors"
	"fmt"

	"github.com/Z4phxr/Habbit-Tracker/internal/storage"
)

type MoodCmd struct {
	Set   MoodSetCmd   `cmd:"" help:"Record the mood for a day."`
	Show  MoodShowCmd  `cmd:"" help:"Show recorded moods."`
	Clear MoodClearCmd `cmd:"" help:"Remove the mood record for a day."`
}

type MoodSetCmd struct {
	Value int    `arg:"" help:"Mood value on the 0-10 scale."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Note  string `help:"Optional note." default:""`
}

func (c *MoodSetCmd) Run(ctx *Context) error {
	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	_, created, err := ctx.Ledger().UpsertMood(ctx.Owner, day, c.Value, c.Note)
	if err != nil {
		return err
	}

	if created {
		fmt.Printf("Recorded mood %d for %s\n", c.Value, day)
	} else {
		fmt.Printf("Updated mood to %d for %s\n", c.Value, day)
	}
	return nil
}

type MoodShowCmd struct {
	Date   string `help:"Anchor date in YYYY-MM-DD format (default: today)." default:""`
	Period string `help:"Period to show: day, week, or month." default:"month" enum:"day,week,month"`
}

func (c *MoodShowCmd) Run(ctx *Context) error {
	mode, err := ParsePeriod(c.Period)
	if err != nil {
		return err
	}

	cal, err := ctx.Assembler().MoodCalendar(ctx.Owner, mode, c.Date)
	if err != nil {
		return err
	}

	fmt.Println(RenderMoodCalendar(cal, mode))
	return nil
}

type MoodClearCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *MoodClearCmd) Run(ctx *Context) error {
	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteMood(ctx.Owner, day); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no mood recorded for %s", day)
		}
		return err
	}

	fmt.Printf("Cleared mood for %s\n", day)
	return nil
}
