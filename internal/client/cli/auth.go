package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
	"github.com/dmitrijs2005/socialdeck/internal/client/services"
	"github.com/dmitrijs2005/socialdeck/internal/client/session"
	"github.com/dmitrijs2005/socialdeck/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for the sign-up form and creates the account. The
// passwords are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	msg, err := a.authService.Register(ctx, models.Registration{
		Username:        username,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		return a.fail(ctx, err, "Registration failed")
	}

	a.notes.Success(common.FirstNonEmpty(msg, "Registration successful! Please log in."))
	return nil
}

// Login prompts for credentials and stores the session. Accounts with
// two-factor auth are asked for their 6-digit code right away.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, email, string(password))

	var tfa *services.TwoFactorRequiredError
	if errors.As(err, &tfa) {
		a.notes.Info("Two-factor authentication required")
		code, cerr := getSimpleText(a.reader, "Enter the 6-digit code from your authenticator app", a.out)
		if cerr != nil {
			return cerr
		}
		s, err = a.authService.VerifyTwoFactorLogin(ctx, tfa.Email, code)
		if err != nil {
			return a.fail(ctx, err, "Invalid verification code")
		}
	} else if err != nil {
		return a.fail(ctx, err, "Login failed")
	}

	a.log.Info(ctx, "logged in", "user", s.User.Email)
	a.notes.Success("Login successful. Welcome, " + s.User.DisplayName() + "!")
	return nil
}

// Logout drops the session locally.
func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	a.loggingOut = true
	a.mu.Unlock()

	a.authService.Logout(ctx)
	a.notes.Success("Logged out")
	return nil
}

// WhoAmI refreshes the profile from the server and prints it with the
// token expiry, when the token carries one.
func (a *App) WhoAmI(ctx context.Context) error {
	s, ok := a.requireSession(ctx)
	if !ok {
		return session.ErrInvalidSession
	}

	u, err := a.authService.Profile(ctx)
	if err != nil {
		return a.fail(ctx, err, "Failed to fetch profile")
	}

	fmt.Fprintf(a.out, "User:     %s\n", u.DisplayName())
	fmt.Fprintf(a.out, "Email:    %s\n", u.Email)
	fmt.Fprintf(a.out, "ID:       %s\n", u.ID)
	if exp, ok := session.TokenExpiry(s.Token); ok {
		fmt.Fprintf(a.out, "Session:  expires %s (%s)\n", exp.Local().Format(time.RFC1123), until(exp))
	}
	return nil
}

func until(t time.Time) string {
	d := time.Until(t).Round(time.Minute)
	if d <= 0 {
		return "expired"
	}
	return "in " + d.String()
}
