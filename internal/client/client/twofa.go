package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
)

func (c *HTTPClient) TwoFactorStatus(ctx context.Context) (*models.TwoFactorStatus, error) {
	var st models.TwoFactorStatus
	if _, err := c.callData(ctx, request{method: http.MethodGet, path: "/api/2fa/status", auth: true}, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// GenerateTwoFactor starts enrolment. The returned secret is not active
// until VerifyTwoFactor succeeds.
func (c *HTTPClient) GenerateTwoFactor(ctx context.Context) (*models.TwoFactorSetup, error) {
	var s models.TwoFactorSetup
	if _, err := c.callData(ctx, request{method: http.MethodPost, path: "/api/2fa/generate", auth: true}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) VerifyTwoFactor(ctx context.Context, code string) (string, error) {
	body := map[string]string{"token": code}
	env, err := c.call(ctx, request{method: http.MethodPost, path: "/api/2fa/verify", body: body, auth: true}, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *HTTPClient) DisableTwoFactor(ctx context.Context, currentPassword string) (string, error) {
	body := map[string]string{"currentPassword": currentPassword}
	env, err := c.call(ctx, request{method: http.MethodPost, path: "/api/2fa/disable", body: body, auth: true}, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
