package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialdeck/internal/client/client"
	"github.com/dmitrijs2005/socialdeck/internal/client/models"
)

// AccountService lists and unlinks the social accounts of the current
// user.
type AccountService interface {
	List(ctx context.Context) ([]models.Account, error)
	Disconnect(ctx context.Context, accountID string) (string, error)
}

type accountService struct {
	client client.Client
	guard  SessionGuard
}

func NewAccountService(client client.Client, guard SessionGuard) AccountService {
	return &accountService{client: client, guard: guard}
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	u, ok := s.guard.CurrentUser(ctx)
	if !ok {
		return nil, ErrNoSession
	}
	accounts, err := s.client.ListAccounts(ctx, u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) Disconnect(ctx context.Context, accountID string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return "", invalid("id", "Account id is required")
	}
	msg, err := s.client.DisconnectAccount(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("disconnect account: %w", err)
	}
	return msg, nil
}

// ConnectService starts provider authorization. The user completes it in
// a browser; no OAuth logic runs here.
type ConnectService interface {
	AuthURL(ctx context.Context, p models.Platform) (*models.AuthURL, error)
	SubmitMastodonCode(ctx context.Context, code string) (string, error)
}

type connectService struct {
	client client.Client
}

func NewConnectService(client client.Client) ConnectService {
	return &connectService{client: client}
}

func (s *connectService) AuthURL(ctx context.Context, p models.Platform) (*models.AuthURL, error) {
	if _, ok := models.ParsePlatform(string(p)); !ok {
		return nil, invalid("platform", fmt.Sprintf("Unknown platform %q", p))
	}
	au, err := s.client.ProviderAuthURL(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%s auth url: %w", p, err)
	}
	return au, nil
}

func (s *connectService) SubmitMastodonCode(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", invalid("code", "Authorization code is required")
	}
	msg, err := s.client.ConnectMastodon(ctx, code)
	if err != nil {
		return "", fmt.Errorf("connect mastodon: %w", err)
	}
	return msg, nil
}
