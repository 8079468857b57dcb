package services

import (
	"context"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
	"github.com/dmitrijs2005/socialdeck/internal/client/session"
)

// SessionGuard is the part of *session.Guard the services use.
type SessionGuard interface {
	Token(ctx context.Context) (string, bool)
	CurrentUser(ctx context.Context) (models.User, bool)
	Establish(ctx context.Context, s session.Session) error
	Logout(ctx context.Context)
}

var _ SessionGuard = (*session.Guard)(nil)
