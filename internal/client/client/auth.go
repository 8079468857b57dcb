package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
	"github.com/dmitrijs2005/socialdeck/internal/common"
)

func (c *HTTPClient) Register(ctx context.Context, r models.Registration) (string, error) {
	env, err := c.call(ctx, request{method: http.MethodPost, path: "/api/users/register", body: r}, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Login posts the credentials. A 2xx answer with requiresTwoFactor set is
// not an error: the result carries the email awaiting a TOTP code.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var lb loginBody
	env, err := c.call(ctx, request{method: http.MethodPost, path: "/api/users/login", body: body}, &lb)

	if lb.RequiresTwoFactor && acceptedStatus(err) {
		return &LoginResult{
			RequiresTwoFactor: true,
			Email:             common.FirstNonEmpty(lb.Email, email),
			Message:           env.Message,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	if lb.Token == "" || lb.User == nil {
		return nil, fmt.Errorf("%w: login response without token or user", ErrMalformedResponse)
	}
	return &LoginResult{Token: lb.Token, User: *lb.User, Message: env.Message}, nil
}

// acceptedStatus reports whether err is nil or only the success flag was
// false on a 2xx response.
func acceptedStatus(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status >= 200 && apiErr.Status < 300
}

func (c *HTTPClient) VerifyTwoFactorLogin(ctx context.Context, email, code string) (*LoginResult, error) {
	body := map[string]string{"email": email, "token": code}

	var sd sessionData
	env, err := c.callData(ctx, request{method: http.MethodPost, path: "/api/2fa/login", body: body}, &sd)
	if err != nil {
		return nil, err
	}
	if sd.Token == "" || sd.User == nil {
		return nil, fmt.Errorf("%w: 2fa login response without token or user", ErrMalformedResponse)
	}
	return &LoginResult{Token: sd.Token, User: *sd.User, Message: env.Message}, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var ub userBody
	env, err := c.call(ctx, request{method: http.MethodGet, path: "/api/users/profile", auth: true}, &ub)
	if err != nil {
		return nil, err
	}
	if ub.User == nil && env.hasData() {
		var nested userBody
		if jsonErr := unmarshalData(env, &nested); jsonErr == nil {
			ub.User = nested.User
		}
	}
	if ub.User == nil {
		return nil, fmt.Errorf("%w: profile response without user", ErrMalformedResponse)
	}
	return ub.User, nil
}
