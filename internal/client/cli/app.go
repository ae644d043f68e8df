package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/jwtconsole/internal/client/client"
	"github.com/dmitrijs2005/jwtconsole/internal/client/config"
	"github.com/dmitrijs2005/jwtconsole/internal/client/i18n"
	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
	"github.com/dmitrijs2005/jwtconsole/internal/client/services"
	"github.com/dmitrijs2005/jwtconsole/internal/client/session"
	"github.com/dmitrijs2005/jwtconsole/internal/client/storage"
	"github.com/dmitrijs2005/jwtconsole/internal/client/views"
	"github.com/dmitrijs2005/jwtconsole/internal/logging"
)

// sessionSource is what the App watches to keep the prompt current.
type sessionSource interface {
	Observe(ctx context.Context) <-chan *models.Session
}

type App struct {
	authService services.AuthService
	sessions    sessionSource
	tr          i18n.Translator
	logger      logging.Logger

	nav          *router
	loginView    *views.LoginView
	registerView *views.RegisterView
	usersView    *views.UsersView

	reader *bufio.Reader
	out    io.Writer

	mu       sync.Mutex
	userName string

	closers []func() error
}

// NewApp opens the local store at cfg.StorageDSN, restores any saved
// session and wires the API client, gateways and views.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	tr, err := i18n.New(cfg.Locale)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, cfg.StorageDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "dsn", cfg.StorageDSN, "error", err)
		return nil, err
	}

	store := session.NewStore(ctx, db, logger)

	apiClient, err := client.NewHTTPClient(cfg.ServerURL, store, logger, client.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	delays := views.Delays{Redirect: cfg.RedirectDelay, Close: cfg.CloseDelay, Clear: cfg.ClearDelay}
	a := newApp(services.NewAuthService(apiClient, store), services.NewUserService(apiClient), store, tr, logger, delays, in, out)
	a.closers = append(a.closers, db.Close)
	return a, nil
}

func newApp(auth services.AuthService, users services.UserService, sessions sessionSource, tr i18n.Translator,
	logger logging.Logger, delays views.Delays, in io.Reader, out io.Writer) *App {
	a := &App{
		authService: auth,
		sessions:    sessions,
		tr:          tr,
		logger:      logger,
		nav:         &router{route: views.RouteLogin},
		reader:      bufio.NewReader(in),
		out:         out,
	}
	a.loginView = views.NewLoginView(auth, a.nav, tr, logger)
	a.registerView = views.NewRegisterView(auth, a.nav, tr, logger, delays)
	a.usersView = views.NewUsersView(users, auth, a.nav, a, tr, logger, delays)
	a.setUserName(auth.Current())
	return a
}

// Run shows the welcome line and blocks in the REPL until the user leaves or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	a.println(a.tr.T(i18n.CLIWelcome))

	if a.isLoggedIn(ctx) {
		a.nav.Navigate(views.RouteUsers)
	}

	go a.watchSession(ctx)

	runREPL(ctx, a, a.tr, a.getStatus, a.reader)
}

// Close cancels pending view timers and releases the local store.
func (a *App) Close() error {
	a.registerView.Close()
	a.usersView.Close()

	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

// watchSession keeps the prompt's user name in sync with the session store.
func (a *App) watchSession(ctx context.Context) {
	for s := range a.sessions.Observe(ctx) {
		a.setUserName(s)
	}
}

func (a *App) setUserName(s *models.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if s == nil {
		a.userName = ""
		return
	}
	a.userName = s.Username
}

func (a *App) getStatus() string {
	a.mu.Lock()
	name := a.userName
	a.mu.Unlock()

	s := string(a.nav.Route())
	if name != "" {
		s = s + " " + name
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsAuthenticated(ctx)
}

// Confirm implements views.Confirmer by asking on the terminal.
func (a *App) Confirm(_ context.Context, question string) bool {
	return askYesNo(a.reader, question, a.out)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// report prints the message a view is currently showing.
func (a *App) report(st views.Status) {
	if st.Error != "" {
		a.println(st.Error)
	}
	if st.Success != "" {
		a.println(st.Success)
	}
}
