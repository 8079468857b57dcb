package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
	"github.com/dmitrijs2005/socialdeck/internal/logging"
)

// ErrInvalidSession is returned by Establish for a session that would not
// pass CheckSession.
var ErrInvalidSession = errors.New("invalid session: token, user id and email are required")

// Guard validates the stored session and redirects on failure.
type Guard struct {
	store       Storage
	nav         Navigator
	log         logging.Logger
	currentPath func() string
}

type Option func(*Guard)

// WithCurrentPath sets where the caller is, for LoginPath.
func WithCurrentPath(f func() string) Option {
	return func(g *Guard) { g.currentPath = f }
}

func NewGuard(store Storage, nav Navigator, log logging.Logger, opts ...Option) *Guard {
	if log == nil {
		log = logging.Nop()
	}
	g := &Guard{
		store:       store,
		nav:         nav,
		log:         log.With("component", "session"),
		currentPath: func() string { return "" },
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// CheckSession reports whether a complete session is stored. On any
// failure the stored state is cleared and the navigator is called once.
func (g *Guard) CheckSession(ctx context.Context) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			res = g.fail(ctx, ReasonStorage, fmt.Errorf("panic: %v", p))
		}
	}()

	token, err := g.store.Get(ctx, TokenKey)
	if err != nil {
		return g.fail(ctx, ReasonStorage, err)
	}
	rawUser, err := g.store.Get(ctx, UserKey)
	if err != nil {
		return g.fail(ctx, ReasonStorage, err)
	}

	if strings.TrimSpace(string(token)) == "" || len(rawUser) == 0 {
		return g.fail(ctx, ReasonMissing, nil)
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return g.fail(ctx, ReasonMalformed, err)
	}
	if !user.HasIdentity() {
		return g.fail(ctx, ReasonMalformed, errors.New("user record lacks id or email"))
	}

	return Result{Authenticated: true, Session: Session{Token: string(token), User: user}}
}

func (g *Guard) fail(ctx context.Context, reason Reason, cause error) Result {
	if cause != nil {
		g.log.Warn(ctx, "session rejected", "reason", reason, "error", cause)
	} else {
		g.log.Debug(ctx, "no session", "reason", reason)
	}
	g.clear(ctx)
	g.redirect()
	return Result{Reason: reason}
}

func (g *Guard) clear(ctx context.Context) {
	if err := g.store.Clear(ctx); err != nil {
		g.log.Error(ctx, "clear session storage", "error", err)
	}
}

func (g *Guard) redirect() {
	if g.nav != nil {
		g.nav.Navigate(LoginPath(g.currentPath()))
	}
}

// Token returns the stored bearer token. It implements client.TokenSource.
func (g *Guard) Token(ctx context.Context) (_ string, ok bool) {
	defer g.recoverRead(ctx, TokenKey, &ok)

	token, err := g.store.Get(ctx, TokenKey)
	if err != nil {
		g.log.Warn(ctx, "read session token", "error", err)
		return "", false
	}
	if strings.TrimSpace(string(token)) == "" {
		return "", false
	}
	return string(token), true
}

// CurrentUser returns the stored user, or false when it is absent or
// malformed.
func (g *Guard) CurrentUser(ctx context.Context) (_ models.User, ok bool) {
	defer g.recoverRead(ctx, UserKey, &ok)

	raw, err := g.store.Get(ctx, UserKey)
	if err != nil || len(raw) == 0 {
		return models.User{}, false
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil || !u.HasIdentity() {
		return models.User{}, false
	}
	return u, true
}

// recoverRead turns a panicking read into a miss. Reads leave the stored
// state alone; the next CheckSession clears it.
func (g *Guard) recoverRead(ctx context.Context, key string, ok *bool) {
	if p := recover(); p != nil {
		g.log.Warn(ctx, "read session", "key", key, "error", fmt.Errorf("panic: %v", p))
		*ok = false
	}
}

// Establish stores s as the current session, replacing any previous one.
func (g *Guard) Establish(ctx context.Context, s Session) error {
	if !s.Valid() {
		return ErrInvalidSession
	}
	rawUser, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := g.store.Put(ctx, map[string][]byte{
		TokenKey: []byte(s.Token),
		UserKey:  rawUser,
	}); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	g.log.Info(ctx, "session established", "user", s.User.Email)
	return nil
}

// Logout clears the session and returns to the login entry point. It is
// safe to call without a session.
func (g *Guard) Logout(ctx context.Context) {
	g.clear(ctx)
	g.redirect()
}
