package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/socialdeck/internal/client/client"
	"github.com/dmitrijs2005/socialdeck/internal/client/config"
	"github.com/dmitrijs2005/socialdeck/internal/client/models"
	"github.com/dmitrijs2005/socialdeck/internal/client/services"
	"github.com/dmitrijs2005/socialdeck/internal/client/session"
	"github.com/dmitrijs2005/socialdeck/internal/logging"
)

const testToken = "tok-1"

var testUser = map[string]any{"id": 7, "email": "ann@example.com", "username": "ann"}

// fakeAPI is a minimal stand-in for the scheduling backend.
type fakeAPI struct {
	srv *httptest.Server

	mu      sync.Mutex
	down    bool
	expired bool
	posts   []string
	deleted []string
	slots   []map[string]string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": "User registered"})
	})
	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch {
		case body["email"] == "2fa@example.com":
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "requiresTwoFactor": true, "email": body["email"]})
		case body["password"] != "secret":
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
		default:
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": testToken, "user": testUser})
		}
	})
	mux.HandleFunc("POST /api/2fa/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["token"] != "123456" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid 2FA code"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"token": testToken, "user": testUser},
		})
	})
	mux.HandleFunc("GET /api/schedule/options", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"timezone": "UTC",
				"hours":    []map[string]any{{"value": 9, "label": "9:00 AM"}},
			},
		})
	})

	f.authed(mux, "GET /api/users/profile", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": testUser})
	})
	f.authed(mux, "GET /api/accounts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]any{{
				"id": 1, "platform": "mastodon", "username": "ann",
				"display_name": "Ann", "instance_url": "https://mastodon.social",
			}},
		})
	})
	f.authed(mux, "DELETE /api/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.deleted = append(f.deleted, r.PathValue("id"))
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Account disconnected"})
	})
	f.authed(mux, "GET /api/mastodon/auth", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "authUrl": "https://mastodon.social/oauth/authorize?x=1", "isOOB": false})
	})
	f.authed(mux, "GET /api/schedule", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": 3, "day_of_week": 1, "time_of_day": "09:30:00"}},
		})
	})
	f.authed(mux, "POST /api/schedule", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			DayOfWeek int    `json:"day_of_week"`
			TimeOfDay string `json:"time_of_day"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.slots = append(f.slots, map[string]string{"day": fmt.Sprint(body.DayOfWeek), "time": body.TimeOfDay})
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"data":    map[string]any{"id": 4, "day_of_week": body.DayOfWeek, "time_of_day": body.TimeOfDay},
		})
	})
	f.authed(mux, "POST /api/posts", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
			return
		}
		f.mu.Lock()
		f.posts = append(f.posts, r.FormValue("content"))
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"post":    map[string]any{"id": 11, "content": r.FormValue("content"), "status": "published"},
		})
	})
	f.authed(mux, "GET /api/2fa/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"twoFactorEnabled": true}})
	})

	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		down := f.down
		f.mu.Unlock()
		if down {
			http.Error(w, "maintenance", http.StatusServiceUnavailable)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// authed registers h behind a bearer token check.
func (f *fakeAPI) authed(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		expired := f.expired
		f.mu.Unlock()
		if expired || r.Header.Get("Authorization") != "Bearer "+testToken {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid token"})
			return
		}
		h(w, r)
	})
}

func (f *fakeAPI) setDown(v bool) {
	f.mu.Lock()
	f.down = v
	f.mu.Unlock()
}

func (f *fakeAPI) setExpired(v bool) {
	f.mu.Lock()
	f.expired = v
	f.mu.Unlock()
}

type fakeRecord struct {
	posts   []string
	deleted []string
	slots   []map[string]string
}

// recorded returns a copy of what the handlers saw.
func (f *fakeAPI) recorded() fakeRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fakeRecord{
		posts:   append([]string(nil), f.posts...),
		deleted: append([]string(nil), f.deleted...),
		slots:   append([]map[string]string(nil), f.slots...),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// syncBuffer guards a bytes.Buffer written by the REPL and the watcher.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// newTestApp builds an App against api with input as the user's typing.
// Passwords are read as plain lines.
func newTestApp(t *testing.T, api *fakeAPI, input string) (*App, *syncBuffer) {
	t.Helper()

	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })
	captureOutput(t)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = api.srv.URL
	cfg.NotificationTTL = time.Minute
	cfg.HTTPTimeout = 5 * time.Second

	out := &syncBuffer{}
	a, err := NewApp(context.Background(), cfg, logging.Nop(), strings.NewReader(input), out)
	require.NoError(t, err)
	t.Cleanup(a.notes.Close)
	return a, out
}

func establish(t *testing.T, a *App) {
	t.Helper()
	require.NoError(t, a.guard.Establish(context.Background(), session.Session{
		Token: testToken,
		User:  models.User{ID: "7", Email: "ann@example.com", Username: "ann"},
	}))
}

func noteMessages(a *App) []string {
	var msgs []string
	for _, n := range a.notes.Active() {
		msgs = append(msgs, n.Message)
	}
	return msgs
}

func TestNewApp_RejectsBadConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	cfg.StorageBackend = "redis"
	_, err := NewApp(context.Background(), cfg, nil, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)

	cfg.StorageBackend = "memory"
	cfg.APIBaseURL = "ftp://example.com"
	_, err = NewApp(context.Background(), cfg, nil, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
}

func TestApp_StatusAndLoginState(t *testing.T) {
	api := newFakeAPI(t)
	a, _ := newTestApp(t, api, "")

	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())

	a.setMode(ModeOnline)
	assert.Equal(t, "(online)", a.getStatus())

	establish(t, a)
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(ann online)", a.getStatus())
}

func TestApp_SetMode(t *testing.T) {
	a := &App{}

	changed, prev := a.setMode(ModeOnline)
	assert.True(t, changed)
	assert.Equal(t, Mode(""), prev)

	changed, _ = a.setMode(ModeOnline)
	assert.False(t, changed)

	changed, prev = a.setMode(ModeOffline)
	assert.True(t, changed)
	assert.Equal(t, ModeOnline, prev)
	assert.Equal(t, ModeOffline, a.getMode())
}

func TestApp_CheckOnlineTransitions(t *testing.T) {
	api := newFakeAPI(t)
	a, _ := newTestApp(t, api, "")
	ctx := context.Background()

	a.checkOnline(ctx)
	assert.Equal(t, ModeOnline, a.getMode())
	assert.Empty(t, a.notes.Active(), "first successful probe is silent")

	api.setDown(true)
	a.checkOnline(ctx)
	a.checkOnline(ctx)
	assert.Equal(t, ModeOffline, a.getMode())
	require.Len(t, a.notes.Active(), 1, "offline is reported once")
	assert.Contains(t, a.notes.Active()[0].Message, "Cannot reach the server")

	api.setDown(false)
	a.checkOnline(ctx)
	assert.Equal(t, ModeOnline, a.getMode())
	msgs := noteMessages(a)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Connection to the server restored", msgs[1])
}

func TestApp_CheckOnlineIgnoresCancelledContext(t *testing.T) {
	api := newFakeAPI(t)
	a, _ := newTestApp(t, api, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a.checkOnline(ctx)

	assert.Equal(t, Mode(""), a.getMode())
	assert.Empty(t, a.notes.Active())
}

func TestApp_RequireSessionWarnsAndClears(t *testing.T) {
	api := newFakeAPI(t)
	a, _ := newTestApp(t, api, "")
	ctx := context.Background()

	require.NoError(t, a.store.Put(ctx, map[string][]byte{session.TokenKey: []byte(testToken)}))

	_, ok := a.requireSession(ctx)
	assert.False(t, ok)
	assert.Equal(t, []string{"Authentication required. Please log in."}, noteMessages(a))

	raw, err := a.store.Get(ctx, session.TokenKey)
	require.NoError(t, err)
	assert.Empty(t, raw, "partial session is wiped")
}

func TestApp_Fail(t *testing.T) {
	api := newFakeAPI(t)
	ctx := context.Background()

	t.Run("validation message is shown as is", func(t *testing.T) {
		a, _ := newTestApp(t, api, "")
		err := fmt.Errorf("wrap: %w", &services.ValidationError{Field: "content", Message: "Please enter content or add media"})
		assert.Error(t, a.fail(ctx, err, "fallback"))
		assert.Equal(t, []string{"Please enter content or add media"}, noteMessages(a))
	})

	t.Run("unauthorized ends the session", func(t *testing.T) {
		a, _ := newTestApp(t, api, "")
		establish(t, a)
		err := fmt.Errorf("list: %w", &client.APIError{Status: http.StatusUnauthorized, Message: "Invalid token"})
		assert.Error(t, a.fail(ctx, err, "fallback"))
		assert.False(t, a.isLoggedIn())
		assert.Equal(t, []string{"Invalid token", "Authentication required. Please log in."}, noteMessages(a))
	})

	t.Run("unauthorized without a session only shows the message", func(t *testing.T) {
		a, _ := newTestApp(t, api, "")
		err := fmt.Errorf("login: %w", &client.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"})
		assert.ErrorIs(t, a.fail(ctx, err, "Login failed"), client.ErrUnauthorized)
		assert.Equal(t, []string{"Invalid credentials"}, noteMessages(a))
	})

	t.Run("server message wins over fallback", func(t *testing.T) {
		a, _ := newTestApp(t, api, "")
		assert.Error(t, a.fail(ctx, &client.APIError{Status: 400, Message: "Bad slot"}, "Failed"))
		assert.Equal(t, []string{"Bad slot"}, noteMessages(a))
	})

	t.Run("fallback for opaque errors", func(t *testing.T) {
		a, _ := newTestApp(t, api, "")
		assert.Error(t, a.fail(ctx, errors.New("boom"), "Failed to load"))
		assert.Equal(t, []string{"Failed to load"}, noteMessages(a))
	})

	t.Run("cancellation is silent", func(t *testing.T) {
		a, _ := newTestApp(t, api, "")
		assert.ErrorIs(t, a.fail(ctx, context.Canceled, "x"), context.Canceled)
		assert.Empty(t, a.notes.Active())
	})

	t.Run("nil is nil", func(t *testing.T) {
		a, _ := newTestApp(t, api, "")
		assert.NoError(t, a.fail(ctx, nil, "x"))
	})
}

func TestApp_CloseWipesSession(t *testing.T) {
	api := newFakeAPI(t)
	a, _ := newTestApp(t, api, "")
	ctx := context.Background()
	establish(t, a)

	store := a.store
	a.Close(ctx)

	raw, err := store.Get(ctx, session.TokenKey)
	require.NoError(t, err)
	assert.Empty(t, raw)

	a.notes.Info("after close")
	assert.Empty(t, a.notes.Active())
}

func TestApp_RunLoginThenExit(t *testing.T) {
	api := newFakeAPI(t)
	a, out := newTestApp(t, api, "login\nann@example.com\nsecret\nwhoami\nexit\n")
	a.config.OnlineCheckInterval = time.Hour

	a.Run(context.Background())

	s := out.String()
	assert.Contains(t, s, "Login successful. Welcome, ann!")
	assert.Contains(t, s, "Email:    ann@example.com")

	raw, err := a.store.Get(context.Background(), session.TokenKey)
	require.NoError(t, err)
	assert.Empty(t, raw, "session does not outlive the process")
}
