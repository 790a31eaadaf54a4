package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Z4phxr/Habbit-Tracker/internal/models"
	"github.com/Z4phxr/Habbit-Tracker/internal/storage"
	"github.com/Z4phxr/Habbit-Tracker/internal/tracker"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Toggle  HabitToggleCmd  `cmd:"" help:"Toggle a habit's completion for a day."`
	Rename  HabitRenameCmd  `cmd:"" help:"Rename a habit."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive a habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit and its history."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	// Habit names are unique per owner
	_, err := ctx.Store.GetHabitByName(ctx.Owner, c.Name)
	if err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		OwnerID:     ctx.Owner,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   time.Now(),
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Name)
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(ctx.Owner, c.Archived)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if habit.Archived() {
			status = " [ARCHIVED]"
		}
		if habit.Description != "" {
			fmt.Printf("%s%s - %s\n", habit.Name, status, habit.Description)
		} else {
			fmt.Printf("%s%s\n", habit.Name, status)
		}
	}

	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(ctx.Owner, c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	outcome, err := ctx.Ledger().Toggle(ctx.Owner, habit.ID, day)
	if err != nil {
		return err
	}

	if outcome == tracker.OutcomeCreated {
		fmt.Printf("Marked habit %q for %s\n", c.Name, day)
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", c.Name, day)
	}
	return nil
}

type HabitRenameCmd struct {
	Name    string `arg:"" help:"Current habit name."`
	NewName string `arg:"" help:"New habit name."`
}

func (c *HabitRenameCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(ctx.Owner, c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if _, err := ctx.Store.GetHabitByName(ctx.Owner, c.NewName); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.NewName)
	}

	habit.Name = c.NewName
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Renamed habit %q to %q\n", c.Name, c.NewName)
	return nil
}

type HabitArchiveCmd struct {
	Name      string `arg:"" help:"Habit name to archive."`
	Unarchive bool   `help:"Unarchive the habit instead."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(ctx.Owner, c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if c.Unarchive {
		if err := ctx.Store.UnarchiveHabit(ctx.Owner, habit.ID); err != nil {
			return err
		}
		fmt.Printf("Unarchived habit: %s\n", c.Name)
	} else {
		if err := ctx.Store.ArchiveHabit(ctx.Owner, habit.ID); err != nil {
			return err
		}
		fmt.Printf("Archived habit: %s\n", c.Name)
	}

	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(ctx.Owner, c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteHabit(ctx.Owner, habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	fmt.Println("(Completion history for this habit was removed as well)")
	return nil
}
