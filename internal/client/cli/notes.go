package cli

import (
	"context"
	"strings"
)

// Notes lists the notifications that are still visible.
func (a *App) Notes(ctx context.Context) error {
	a.view.PrintList(a.notes.Active())
	return nil
}

// Dismiss closes the notification whose id starts with args[0].
func (a *App) Dismiss(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "" {
		printlnFn("Usage: dismiss <id>")
		return nil
	}
	for _, n := range a.notes.Active() {
		if strings.HasPrefix(n.ID, args[0]) {
			a.notes.Dismiss(n.ID)
			return nil
		}
	}
	printlnFn("No active notification", args[0])
	return nil
}
