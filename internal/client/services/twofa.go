package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialdeck/internal/client/client"
	"github.com/dmitrijs2005/socialdeck/internal/client/models"
)

type TwoFactorService interface {
	Status(ctx context.Context) (bool, error)
	Generate(ctx context.Context) (*models.TwoFactorSetup, error)
	Verify(ctx context.Context, code string) (string, error)
	Disable(ctx context.Context, currentPassword string) (string, error)
}

type twoFactorService struct {
	client client.Client
}

func NewTwoFactorService(client client.Client) TwoFactorService {
	return &twoFactorService{client: client}
}

func (s *twoFactorService) Status(ctx context.Context) (bool, error) {
	st, err := s.client.TwoFactorStatus(ctx)
	if err != nil {
		return false, fmt.Errorf("2fa status: %w", err)
	}
	return st.Enabled, nil
}

func (s *twoFactorService) Generate(ctx context.Context) (*models.TwoFactorSetup, error) {
	setup, err := s.client.GenerateTwoFactor(ctx)
	if err != nil {
		return nil, fmt.Errorf("2fa generate: %w", err)
	}
	return setup, nil
}

// Verify confirms the code from the authenticator app and enables 2FA.
func (s *twoFactorService) Verify(ctx context.Context, code string) (string, error) {
	if err := validateCode(code); err != nil {
		return "", err
	}
	msg, err := s.client.VerifyTwoFactor(ctx, strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("2fa verify: %w", err)
	}
	return msg, nil
}

func (s *twoFactorService) Disable(ctx context.Context, currentPassword string) (string, error) {
	if currentPassword == "" {
		return "", invalid("currentPassword", "Current password is required")
	}
	msg, err := s.client.DisableTwoFactor(ctx, currentPassword)
	if err != nil {
		return "", fmt.Errorf("2fa disable: %w", err)
	}
	return msg, nil
}
