package client

import (
	"context"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
)

// TokenSource yields the bearer token for authenticated calls. The session
// guard implements it.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// LoginResult is the outcome of a password login. When RequiresTwoFactor
// is set, Token and User are empty and Email names the account awaiting a
// TOTP code.
type LoginResult struct {
	Token             string
	User              models.User
	Message           string
	RequiresTwoFactor bool
	Email             string
}

// Client is the API surface the services depend on.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, r models.Registration) (string, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyTwoFactorLogin(ctx context.Context, email, code string) (*LoginResult, error)
	Profile(ctx context.Context) (*models.User, error)

	TwoFactorStatus(ctx context.Context) (*models.TwoFactorStatus, error)
	GenerateTwoFactor(ctx context.Context) (*models.TwoFactorSetup, error)
	VerifyTwoFactor(ctx context.Context, code string) (string, error)
	DisableTwoFactor(ctx context.Context, currentPassword string) (string, error)

	ListAccounts(ctx context.Context, userID string) ([]models.Account, error)
	DisconnectAccount(ctx context.Context, accountID string) (string, error)
	ProviderAuthURL(ctx context.Context, p models.Platform) (*models.AuthURL, error)
	ConnectMastodon(ctx context.Context, code string) (string, error)

	ListSchedule(ctx context.Context) ([]models.ScheduleSlot, error)
	AddScheduleSlot(ctx context.Context, day models.Weekday, timeOfDay string) (*models.ScheduleSlot, error)
	DeleteScheduleSlot(ctx context.Context, id string) error
	ScheduleOptions(ctx context.Context) (*models.ScheduleOptions, error)

	CreatePost(ctx context.Context, d models.PostDraft) (*models.Post, error)
}
