package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialdeck/internal/client/client"
	"github.com/dmitrijs2005/socialdeck/internal/client/models"
	"github.com/dmitrijs2005/socialdeck/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: validate the form locally, then create the user.
//   - Login: authenticate and store the session, or report that a 2FA code
//     is needed with a *TwoFactorRequiredError.
//   - VerifyTwoFactorLogin: finish a 2FA login and store the session.
//   - Profile: fetch the user and refresh the stored copy.
//   - Logout: drop the session locally; the server is not contacted.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Register(ctx context.Context, r models.Registration) (string, error)
	Login(ctx context.Context, email, password string) (*session.Session, error)
	VerifyTwoFactorLogin(ctx context.Context, email, code string) (*session.Session, error)
	Profile(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	guard  SessionGuard
}

func NewAuthService(client client.Client, guard SessionGuard) AuthService {
	return &authService{client: client, guard: guard}
}

// ValidateRegistration checks the sign-up form the way the server would
// reject it, so obvious mistakes never leave the client.
func ValidateRegistration(r models.Registration) error {
	if strings.TrimSpace(r.Username) == "" || strings.TrimSpace(r.Email) == "" ||
		r.Password == "" || r.ConfirmPassword == "" {
		return invalid("", "All fields are required")
	}
	if r.Password != r.ConfirmPassword {
		return invalid("confirmPassword", "Passwords do not match")
	}
	if len([]rune(r.Password)) < minPasswordLength {
		return invalid("password", fmt.Sprintf("Password must be at least %d characters long", minPasswordLength))
	}
	if !ValidEmail(strings.TrimSpace(r.Email)) {
		return invalid("email", "Please provide a valid email address")
	}
	return nil
}

func (a *authService) Register(ctx context.Context, r models.Registration) (string, error) {
	if err := ValidateRegistration(r); err != nil {
		return "", err
	}
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)

	msg, err := a.client.Register(ctx, r)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return msg, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, invalid("", "Email and password are required")
	}

	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if res.RequiresTwoFactor {
		return nil, &TwoFactorRequiredError{Email: res.Email}
	}
	return a.establish(ctx, res)
}

func (a *authService) VerifyTwoFactorLogin(ctx context.Context, email, code string) (*session.Session, error) {
	if strings.TrimSpace(email) == "" {
		return nil, invalid("email", "Session expired. Please login again.")
	}
	if err := validateCode(code); err != nil {
		return nil, err
	}

	res, err := a.client.VerifyTwoFactorLogin(ctx, email, strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("verify 2fa login: %w", err)
	}
	return a.establish(ctx, res)
}

func (a *authService) establish(ctx context.Context, res *client.LoginResult) (*session.Session, error) {
	s := session.Session{Token: res.Token, User: res.User}
	if err := a.guard.Establish(ctx, s); err != nil {
		if errors.Is(err, session.ErrInvalidSession) {
			return nil, fmt.Errorf("%w: %v", client.ErrMalformedResponse, err)
		}
		return nil, err
	}
	return &s, nil
}

func (a *authService) Profile(ctx context.Context) (*models.User, error) {
	token, ok := a.guard.Token(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	u, err := a.client.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	if u.HasIdentity() {
		if err := a.guard.Establish(ctx, session.Session{Token: token, User: *u}); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.guard.Logout(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
