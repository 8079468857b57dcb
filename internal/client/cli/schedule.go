package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
	"github.com/dmitrijs2005/socialdeck/internal/client/session"
)

var (
	dayStyle   = lipgloss.NewStyle().Bold(true).Width(11)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// Schedule prints the weekly posting slots, Monday first.
func (a *App) Schedule(ctx context.Context) error {
	if _, ok := a.requireSession(ctx); !ok {
		return session.ErrInvalidSession
	}

	groups, err := a.scheduleService.List(ctx)
	if err != nil {
		return a.fail(ctx, err, "Failed to load schedule")
	}

	if opts, err := a.scheduleService.Options(ctx); err == nil && opts.Timezone != "" {
		fmt.Fprintf(a.out, "Timezone: %s\n", opts.Timezone)
	}

	for _, day := range models.WeekOrder {
		slots := groups[day]
		if len(slots) == 0 {
			fmt.Fprintln(a.out, dayStyle.Render(day.String())+faintStyle.Render("no slots"))
			continue
		}
		parts := make([]string, len(slots))
		for i, s := range slots {
			parts[i] = fmt.Sprintf("%s [%s]", models.FormatTimeOfDay(s.TimeOfDay), s.ID)
		}
		fmt.Fprintln(a.out, dayStyle.Render(day.String())+strings.Join(parts, ", "))
	}
	return nil
}

// AddSlot adds a weekly slot: addslot <day> <HH:MM>. Missing arguments
// are prompted for.
func (a *App) AddSlot(ctx context.Context, args []string) error {
	if _, ok := a.requireSession(ctx); !ok {
		return session.ErrInvalidSession
	}

	dayText, err := argOrPrompt(a, args, 0, "Day of week (e.g. monday)")
	if err != nil {
		return err
	}
	day, ok := models.ParseWeekday(dayText)
	if !ok {
		a.notes.Error(fmt.Sprintf("Unknown day %q", dayText))
		return nil
	}
	timeOfDay, err := argOrPrompt(a, args, 1, "Time (HH:MM, 24h)")
	if err != nil {
		return err
	}

	slot, err := a.scheduleService.Add(ctx, day, timeOfDay)
	if err != nil {
		return a.fail(ctx, err, "Failed to add time slot")
	}
	a.notes.Success(fmt.Sprintf("Time slot added: %s %s", slot.DayOfWeek, models.FormatTimeOfDay(slot.TimeOfDay)))
	return nil
}

// DelSlot deletes the slot whose id is the first argument.
func (a *App) DelSlot(ctx context.Context, args []string) error {
	if _, ok := a.requireSession(ctx); !ok {
		return session.ErrInvalidSession
	}

	id, err := argOrPrompt(a, args, 0, "Enter slot ID to delete")
	if err != nil {
		return err
	}
	if err := a.scheduleService.Delete(ctx, id); err != nil {
		return a.fail(ctx, err, "Failed to delete time slot")
	}
	a.notes.Success("Time slot deleted")
	return nil
}
