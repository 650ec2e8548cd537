// Package cli is the terminal surface of the Yuyu client: a REPL that
// drives the API wrappers, the session and notification stores, and the
// route guard.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/yuyuwang/yuyu-cli/internal/client/api"
	"github.com/yuyuwang/yuyu-cli/internal/client/config"
	"github.com/yuyuwang/yuyu-cli/internal/client/notifications"
	"github.com/yuyuwang/yuyu-cli/internal/client/repositories/credentials"
	"github.com/yuyuwang/yuyu-cli/internal/client/router"
	"github.com/yuyuwang/yuyu-cli/internal/client/session"
	"github.com/yuyuwang/yuyu-cli/internal/logging"
	"github.com/yuyuwang/yuyu-cli/internal/notify"
)

type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Store
	notif   *notifications.Store
	router  *router.Router
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := credentials.Open(ctx, cfg.CredentialsDB)
	if err != nil {
		return nil, err
	}

	sessionStore := session.NewStore(credentials.NewSQLiteRepository(db), log)

	sink := notify.Stderr()
	apiClient := api.New(cfg.APIBaseURL, sessionStore, log,
		api.WithNotifySink(sink),
		api.WithTimeout(cfg.RequestTimeout),
		api.WithUploadTimeout(cfg.UploadTimeout),
	)

	notifStore := notifications.NewStore(apiClient, cfg.PollInterval, log, sink)

	a := &App{
		config:  cfg,
		api:     apiClient,
		session: sessionStore,
		notif:   notifStore,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	a.router = router.New(sessionStore, log, a.routes())

	return a, nil
}

// Run restores a persisted session, resumes polling when one exists, and
// enters the REPL. Polling stops when the REPL returns.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	if a.session.IsLoggedIn() {
		if me, err := a.api.Me(ctx); err == nil {
			a.session.SetProfile(*me)
		}
		a.notif.StartPolling(ctx)
	}

	defer a.notif.StopPolling()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}
