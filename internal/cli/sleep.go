package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
	"github.com/Z4phxr/Habbit-Tracker/internal/utils"
)

type SleepCmd struct {
	Log    SleepLogCmd    `cmd:"" help:"Record a sleep interval."`
	Show   SleepShowCmd   `cmd:"" help:"Show nightly sleep."`
	Delete SleepDeleteCmd `cmd:"" help:"Delete sleep intervals overlapping a night."`
}

type SleepLogCmd struct {
	Start string `arg:"" help:"Fell-asleep time (RFC3339 or \"YYYY-MM-DD HH:MM\")."`
	End   string `arg:"" help:"Woke-up time (RFC3339 or \"YYYY-MM-DD HH:MM\")."`
}

func (c *SleepLogCmd) Run(ctx *Context) error {
	start, err := utils.ParseTimestamp(c.Start, ctx.Location)
	if err != nil {
		return err
	}
	end, err := utils.ParseTimestamp(c.End, ctx.Location)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return fmt.Errorf("wake-up time must be after fell-asleep time")
	}

	interval := models.SleepInterval{
		ID:      uuid.New().String(),
		OwnerID: ctx.Owner,
		Start:   start,
		End:     end,
	}

	if err := ctx.Store.AddSleepInterval(interval); err != nil {
		return err
	}

	fmt.Printf("Logged sleep: %s (%s)\n",
		start.Format("2006-01-02 15:04")+" - "+end.Format("2006-01-02 15:04"),
		formatDuration(interval.Duration()))
	return nil
}

type SleepShowCmd struct {
	Date   string `help:"Anchor date in YYYY-MM-DD format (default: today)." default:""`
	Period string `help:"Period to show: day, week, or month." default:"week" enum:"day,week,month"`
}

func (c *SleepShowCmd) Run(ctx *Context) error {
	mode, err := ParsePeriod(c.Period)
	if err != nil {
		return err
	}

	sheet, err := ctx.Assembler().SleepSheet(ctx.Owner, mode, c.Date)
	if err != nil {
		return err
	}

	fmt.Println(RenderSleepSheet(sheet))
	return nil
}

type SleepDeleteCmd struct {
	Date string `arg:"" help:"Night anchor date in YYYY-MM-DD format."`
}

func (c *SleepDeleteCmd) Run(ctx *Context) error {
	start, end, err := ctx.Resolver().Window(c.Date)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	count, err := ctx.Store.DeleteSleepIntervalsInWindow(ctx.Owner, end, start)
	if err != nil {
		return err
	}

	if count == 0 {
		fmt.Printf("No sleep intervals overlap the night of %s\n", c.Date)
	} else {
		fmt.Printf("Deleted %d sleep interval(s) overlapping the night of %s\n", count, c.Date)
	}
	return nil
}
