package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
)

func (c *HTTPClient) ListAccounts(ctx context.Context, userID string) ([]models.Account, error) {
	r := request{
		method: http.MethodGet,
		path:   "/api/accounts",
		query:  url.Values{"user_id": {userID}},
		auth:   true,
	}
	var accounts []models.Account
	env, err := c.call(ctx, r, nil)
	if err != nil {
		return nil, err
	}
	// An account-less user may get data omitted entirely.
	if !env.hasData() {
		return []models.Account{}, nil
	}
	if err := unmarshalData(env, &accounts); err != nil {
		return nil, fmt.Errorf("%w: accounts: %v", ErrMalformedResponse, err)
	}
	return accounts, nil
}

func (c *HTTPClient) DisconnectAccount(ctx context.Context, accountID string) (string, error) {
	r := request{method: http.MethodDelete, path: "/api/accounts/" + url.PathEscape(accountID), auth: true}
	env, err := c.call(ctx, r, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// ProviderAuthURL asks the API for the provider's authorization page.
func (c *HTTPClient) ProviderAuthURL(ctx context.Context, p models.Platform) (*models.AuthURL, error) {
	if _, ok := models.ParsePlatform(string(p)); !ok {
		return nil, fmt.Errorf("unknown platform %q", p)
	}

	var au models.AuthURL
	r := request{method: http.MethodGet, path: "/api/" + string(p) + "/auth", auth: true}
	if _, err := c.call(ctx, r, &au); err != nil {
		return nil, err
	}
	if au.URL == "" {
		return nil, fmt.Errorf("%w: %s auth response without authUrl", ErrMalformedResponse, p)
	}
	return &au, nil
}

// ConnectMastodon finishes an out-of-band Mastodon authorization.
func (c *HTTPClient) ConnectMastodon(ctx context.Context, code string) (string, error) {
	body := map[string]string{"code": code}
	env, err := c.call(ctx, request{method: http.MethodPost, path: "/api/mastodon/connect", body: body, auth: true}, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
