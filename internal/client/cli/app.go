package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/socialdeck/internal/client/client"
	"github.com/dmitrijs2005/socialdeck/internal/client/config"
	"github.com/dmitrijs2005/socialdeck/internal/client/notify"
	"github.com/dmitrijs2005/socialdeck/internal/client/services"
	"github.com/dmitrijs2005/socialdeck/internal/client/session"
	"github.com/dmitrijs2005/socialdeck/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds one connectivity probe.
const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger

	store session.Storage
	guard *session.Guard
	notes *notify.Center
	view  *notify.Renderer

	authService     services.AuthService
	twoFactor       services.TwoFactorService
	accountService  services.AccountService
	connectService  services.ConnectService
	scheduleService services.ScheduleService
	postService     services.PostService

	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	mode Mode
	// loggingOut marks a navigation the user asked for.
	loggingOut bool
}

// NewApp wires the client from cfg. Session state lives in the configured
// storage backend and is wiped by Close.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	store, err := session.OpenStorage(ctx, cfg.StorageBackend, cfg.StorageDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing session storage: %w", err)
	}

	a := &App{
		config: cfg,
		log:    log,
		store:  store,
		notes:  notify.NewCenter(notify.WithTTL(cfg.NotificationTTL), notify.WithOutput(out)),
		view:   notify.NewRenderer(out),
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.guard = session.NewGuard(store, session.NavigatorFunc(a.navigate), log)

	apiClient, err := client.NewHTTPClient(cfg.APIBaseURL, cfg.HTTPTimeout, a.guard, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	a.authService = services.NewAuthService(apiClient, a.guard)
	a.twoFactor = services.NewTwoFactorService(apiClient)
	a.accountService = services.NewAccountService(apiClient, a.guard)
	a.connectService = services.NewConnectService(apiClient)
	a.scheduleService = services.NewScheduleService(apiClient)
	a.postService = services.NewPostService(apiClient)

	return a, nil
}

// navigate is the session navigator: the REPL has a single login entry
// point, so the path is only logged.
func (a *App) navigate(path string) {
	a.mu.Lock()
	expected := a.loggingOut
	a.loggingOut = false
	a.mu.Unlock()

	a.log.Debug(context.Background(), "back to login entry point", "path", path)
	if !expected {
		a.notes.Warning("Authentication required. Please log in.")
	}
}

func (a *App) setMode(mode Mode) (changed bool, prev Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	prev = a.mode
	if a.mode == mode {
		return false, prev
	}
	a.mode = mode
	return true, prev
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// Run starts the connectivity watcher and the REPL. It returns when the
// user exits or input ends, and closes the App.
func (a *App) Run(ctx context.Context) {
	defer a.Close(context.WithoutCancel(ctx))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to socialdeck (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close stops notification timers, wipes the session and releases the API
// client.
func (a *App) Close(ctx context.Context) {
	a.notes.Close()
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "clear session on exit", "error", err)
	}
	if err := a.store.Close(); err != nil {
		a.log.Error(ctx, "close session storage", "error", err)
	}
	if err := a.authService.Close(ctx); err != nil {
		a.log.Error(ctx, "close api client", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.guard.CurrentUser(context.Background())
	return ok
}

func (a *App) getStatus() string {
	s := ""
	if u, ok := a.guard.CurrentUser(context.Background()); ok {
		s = u.DisplayName() + " "
	}
	if m := a.getMode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// hasSession reports whether any session state is stored. Rejected
// credentials on login leave nothing to end.
func (a *App) hasSession(ctx context.Context) bool {
	if _, ok := a.guard.Token(ctx); ok {
		return true
	}
	_, ok := a.guard.CurrentUser(ctx)
	return ok
}

// requireSession runs the session check. On failure the guard has already
// wiped the state and navigated back to the login entry point.
func (a *App) requireSession(ctx context.Context) (session.Session, bool) {
	res := a.guard.CheckSession(ctx)
	return res.Session, res.OK()
}

// fail routes err to a notification. Unauthorized responses end the
// session when there is one. Validation messages are shown as is; other
// errors fall back to fallback unless the server sent a message.
func (a *App) fail(ctx context.Context, err error, fallback string) error {
	var invalid *services.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return err
	case errors.As(err, &invalid):
		a.notes.Error(invalid.Message)
	case errors.Is(err, client.ErrUnauthorized):
		a.notes.Error(client.Message(err, "Session expired. Please log in again."))
		if a.hasSession(ctx) {
			a.log.Warn(ctx, "request rejected, ending session", "error", err)
			a.guard.Logout(ctx)
		}
	case errors.Is(err, services.ErrNoSession):
		a.guard.Logout(ctx)
	default:
		a.log.Error(ctx, fallback, "error", err)
		a.notes.Error(client.Message(err, fallback))
	}
	return err
}

// StartOnlineStatusWatcher pings the API every interval and notifies when
// reachability changes. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.checkOnline(ctx)
	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.authService.Ping(pctx)
	cancel()
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		if changed, _ := a.setMode(ModeOffline); changed {
			a.log.Warn(ctx, "api unreachable", "error", err)
			a.notes.Warning("Cannot reach the server at " + a.config.APIBaseURL)
		}
		return
	}
	if changed, prev := a.setMode(ModeOnline); changed && prev == ModeOffline {
		a.log.Info(ctx, "api reachable again")
		a.notes.Info("Connection to the server restored")
	}
}
