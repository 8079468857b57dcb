package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
	"github.com/dmitrijs2005/socialdeck/internal/client/session"
	"github.com/dmitrijs2005/socialdeck/internal/common"
)

// Accounts lists the linked social accounts.
func (a *App) Accounts(ctx context.Context) error {
	if _, ok := a.requireSession(ctx); !ok {
		return session.ErrInvalidSession
	}

	accounts, err := a.accountService.List(ctx)
	if err != nil {
		return a.fail(ctx, err, "Failed to load accounts")
	}
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No connected accounts. Use 'connect <mastodon|reddit|linkedin>' to add one.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "PLATFORM", "ACCOUNT", "INSTANCE", "CONNECTED")
	for _, acc := range accounts {
		name := acc.Username
		if acc.DisplayName != "" {
			name = fmt.Sprintf("%s (%s)", acc.DisplayName, acc.Username)
		}
		connected := ""
		if acc.CreatedAt != nil {
			connected = acc.CreatedAt.Local().Format("2006-01-02")
		}
		t.Row(acc.ID.String(), string(acc.Platform), name, acc.InstanceURL, connected)
	}
	fmt.Fprintln(a.out, t.Render())
	return nil
}

// Disconnect unlinks the account given as the first argument, prompting
// for it when absent.
func (a *App) Disconnect(ctx context.Context, args []string) error {
	if _, ok := a.requireSession(ctx); !ok {
		return session.ErrInvalidSession
	}

	id, err := argOrPrompt(a, args, 0, "Enter account ID to disconnect")
	if err != nil {
		return err
	}

	msg, err := a.accountService.Disconnect(ctx, id)
	if err != nil {
		return a.fail(ctx, err, "Failed to disconnect account")
	}
	a.notes.Success(common.FirstNonEmpty(msg, "Account disconnected successfully"))
	return nil
}

// Connect prints the provider's authorization URL. For Mastodon's
// out-of-band flow it then asks for the code shown by the instance.
func (a *App) Connect(ctx context.Context, args []string) error {
	if _, ok := a.requireSession(ctx); !ok {
		return session.ErrInvalidSession
	}

	name, err := argOrPrompt(a, args, 0, "Platform (mastodon, reddit, linkedin)")
	if err != nil {
		return err
	}
	p, ok := models.ParsePlatform(name)
	if !ok {
		a.notes.Error(fmt.Sprintf("Unknown platform %q", name))
		return nil
	}

	au, err := a.connectService.AuthURL(ctx, p)
	if err != nil {
		return a.fail(ctx, err, "Failed to start "+string(p)+" authorization")
	}

	fmt.Fprintf(a.out, "Open this URL in your browser to authorize %s:\n\n  %s\n\n", p, au.URL)
	if p != models.PlatformMastodon || !au.IsOOB {
		a.notes.Info("Finish the authorization in your browser, then run 'accounts'")
		return nil
	}

	code, err := getSimpleText(a.reader, "Paste the authorization code", a.out)
	if err != nil {
		return err
	}
	msg, err := a.connectService.SubmitMastodonCode(ctx, code)
	if err != nil {
		return a.fail(ctx, err, "Failed to connect Mastodon account")
	}
	a.notes.Success(common.FirstNonEmpty(msg, "Mastodon account connected successfully"))
	return nil
}

// argOrPrompt returns args[i] or asks for it.
func argOrPrompt(a *App, args []string, i int, prompt string) (string, error) {
	if i < len(args) && strings.TrimSpace(args[i]) != "" {
		return args[i], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}
