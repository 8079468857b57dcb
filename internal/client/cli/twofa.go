package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialdeck/internal/client/session"
	"github.com/dmitrijs2005/socialdeck/internal/common"
)

// TwoFA manages two-factor auth: twofa <status|setup|verify|disable>.
func (a *App) TwoFA(ctx context.Context, args []string) error {
	if _, ok := a.requireSession(ctx); !ok {
		return session.ErrInvalidSession
	}

	sub := "status"
	if len(args) > 0 {
		sub = strings.ToLower(args[0])
	}

	switch sub {
	case "status":
		on, err := a.twoFactor.Status(ctx)
		if err != nil {
			return a.fail(ctx, err, "Failed to load 2FA status")
		}
		if on {
			a.notes.Info("Two-factor authentication is enabled")
		} else {
			a.notes.Info("Two-factor authentication is disabled")
		}

	case "setup":
		setup, err := a.twoFactor.Generate(ctx)
		if err != nil {
			return a.fail(ctx, err, "Failed to start 2FA setup")
		}
		fmt.Fprintln(a.out, "Add this key to your authenticator app:")
		fmt.Fprintf(a.out, "\n  %s\n\n", setup.Key())
		code, err := getSimpleText(a.reader, "Enter the 6-digit code to confirm (empty to finish later with 'twofa verify')", a.out)
		if err != nil {
			return err
		}
		if code == "" {
			return nil
		}
		return a.verifyTwoFactor(ctx, code)

	case "verify":
		code, err := argOrPrompt(a, args, 1, "Enter the 6-digit code")
		if err != nil {
			return err
		}
		return a.verifyTwoFactor(ctx, code)

	case "disable":
		pw, err := getPassword(a.reader, "Current password", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(pw)
		msg, err := a.twoFactor.Disable(ctx, string(pw))
		if err != nil {
			return a.fail(ctx, err, "Failed to disable 2FA")
		}
		a.notes.Success(common.FirstNonEmpty(msg, "Two-factor authentication disabled"))

	default:
		printlnFn("Usage: twofa <status|setup|verify|disable>")
	}
	return nil
}

func (a *App) verifyTwoFactor(ctx context.Context, code string) error {
	msg, err := a.twoFactor.Verify(ctx, code)
	if err != nil {
		return a.fail(ctx, err, "Invalid verification code")
	}
	a.notes.Success(common.FirstNonEmpty(msg, "Two-factor authentication enabled"))
	return nil
}
