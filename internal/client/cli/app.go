package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/snoozer/internal/client/client"
	"github.com/dmitrijs2005/snoozer/internal/client/config"
	"github.com/dmitrijs2005/snoozer/internal/client/controller"
	"github.com/dmitrijs2005/snoozer/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/snoozer/internal/client/services"
	"github.com/dmitrijs2005/snoozer/internal/client/session"
	"github.com/dmitrijs2005/snoozer/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config      *config.Config
	db          *sql.DB
	authService services.AuthService
	ctrl        *controller.Controller
	view        *TerminalView
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.New(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.StoragePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.StoragePath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	storage := localstorage.NewSQLiteRepository(db)
	as := services.NewAuthService(apiClient, storage)
	ss := services.NewStoryService(apiClient)

	a := newApp(as, ss, log, os.Stdin, os.Stdout)
	a.config = c
	a.db = db
	return a, nil
}

// newApp assembles an App around already built services.
func newApp(as services.AuthService, ss services.StoryService, log logging.Logger, in io.Reader, out io.Writer) *App {
	view := NewTerminalView(out)
	return &App{
		authService: as,
		ctrl:        controller.New(as, ss, session.New(), view, log),
		view:        view,
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Run loads the page and blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	fmt.Fprintln(a.out, "Welcome to snoozer (type 'help' for commands)")
	a.ctrl.Start(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close(ctx context.Context) {
	if err := a.authService.Close(ctx); err != nil {
		a.log.Warn(ctx, "closing api client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "closing local storage", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.Session().LoggedIn()
}

func (a *App) getStatus() string {
	if u := a.ctrl.Session().Current(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

// reloadIfRequested reruns the page-load sequence after the view asked for
// a reload. In-memory page state is discarded first.
func (a *App) reloadIfRequested(ctx context.Context) {
	if !a.view.TakeReload() {
		return
	}
	a.ctrl.Session().Clear()
	a.view.Reset()
	a.ctrl.Start(ctx)
}
