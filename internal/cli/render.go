package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Z4phxr/Habbit-Tracker/internal/tracker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	sleepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69"))

	moodLowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	moodMidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	moodHighStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

const maxHabitNameWidth = 20

// RenderHabitGrid renders habits as rows against the bucket's dates
func RenderHabitGrid(grid tracker.HabitGrid) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(grid.Title))
	b.WriteString("\n")

	if len(grid.Habits) == 0 {
		b.WriteString("No habits found.")
		return b.String()
	}

	nameWidth := 0
	for _, habit := range grid.Habits {
		if len(habit.Name) > nameWidth {
			nameWidth = len(habit.Name)
		}
	}
	if nameWidth > maxHabitNameWidth {
		nameWidth = maxHabitNameWidth
	}

	// Header row: day of month per date
	b.WriteString(strings.Repeat(" ", nameWidth))
	for _, day := range grid.Dates {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" %3s", day[8:])))
	}
	b.WriteString("\n")

	for _, habit := range grid.Habits {
		name := habit.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-1] + "…"
		}
		b.WriteString(fmt.Sprintf("%-*s", nameWidth, name))
		for _, day := range grid.Dates {
			if grid.Done[tracker.DoneKey(habit.ID, day)] {
				b.WriteString("  " + doneStyle.Render("✓") + " ")
			} else {
				b.WriteString("  " + emptyStyle.Render("·") + " ")
			}
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderSleepSheet renders one row of hourly occupancy per display date
func RenderSleepSheet(sheet tracker.SleepSheet) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(sheet.Title))
	b.WriteString("\n")

	// Hour scale across the top, one label every six blocks
	b.WriteString(strings.Repeat(" ", 11))
	for i := 0; i < len(sheet.HourLabels); i += 6 {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s", sheet.HourLabels[i])))
	}
	b.WriteString("\n")

	for i, day := range sheet.Dates {
		night := sheet.Nights[i]
		b.WriteString(headerStyle.Render(day) + " ")
		for _, block := range night.Blocks {
			if block.Slept {
				b.WriteString(sleepStyle.Render("█"))
			} else {
				b.WriteString(emptyStyle.Render("·"))
			}
		}
		b.WriteString("  " + night.TotalLabel + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderMoodCalendar renders moods as a list for day/week buckets and as a
// Monday-first month sheet otherwise
func RenderMoodCalendar(cal tracker.MoodCalendar, mode tracker.ViewMode) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(cal.Title))
	b.WriteString("\n")

	if mode != tracker.ViewMonth {
		for i, day := range cal.Dates {
			entry := cal.Entries[i]
			if entry == nil {
				b.WriteString(fmt.Sprintf("%s  %s\n", headerStyle.Render(day), emptyStyle.Render("·")))
				continue
			}
			line := fmt.Sprintf("%s  %s", headerStyle.Render(day), moodStyle(entry.Mood).Render(fmt.Sprintf("%2d", entry.Mood)))
			if entry.Note != "" {
				line += "  " + entry.Note
			}
			b.WriteString(line + "\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}

	b.WriteString(headerStyle.Render(" Mo  Tu  We  Th  Fr  Sa  Su"))
	b.WriteString("\n")

	col := cal.LeadingEmpty
	b.WriteString(strings.Repeat("    ", col))
	for i := range cal.Dates {
		cell := emptyStyle.Render("  ·")
		if entry := cal.Entries[i]; entry != nil {
			cell = moodStyle(entry.Mood).Render(fmt.Sprintf("%3d", entry.Mood))
		}
		b.WriteString(cell + " ")
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func moodStyle(value int) lipgloss.Style {
	switch {
	case value <= 3:
		return moodLowStyle
	case value <= 6:
		return moodMidStyle
	default:
		return moodHighStyle
	}
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dmin", hours, minutes)
}
