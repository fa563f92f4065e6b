// Package server initializes and runs the CampusMatch server. It opens the
// embedded store, applies migrations, builds the services and runs the HTTP
// API until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/campusmatch/internal/dbx"
	"github.com/dmitrijs2005/campusmatch/internal/filex"
	"github.com/dmitrijs2005/campusmatch/internal/logging"
	"github.com/dmitrijs2005/campusmatch/internal/server/config"
	"github.com/dmitrijs2005/campusmatch/internal/server/httpapi"
	"github.com/dmitrijs2005/campusmatch/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/campusmatch/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *httpapi.HTTPServer
}

// seams for tests
var (
	openStore            = dbx.OpenSQLite
	newRepositoryManager = repomanager.NewSQLiteRepositoryManager
)

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(c.LogLevel, c.LogFormat, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	if !dbx.IsMemoryDSN(c.DatabaseDSN) {
		if _, err := filex.EnsureDir(c.DataDir); err != nil {
			return nil, fmt.Errorf("data dir init error: %w", err)
		}
		if dir := filex.DSNDir(c.DatabaseDSN); dir != "" {
			if _, err := filex.EnsureDir(dir); err != nil {
				return nil, fmt.Errorf("data dir init error: %w", err)
			}
		}
	}

	db, err := openStore(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	us := services.NewUserService(db, rm, c)
	ms := services.NewMatchService(db, rm)
	mgs := services.NewMessageService(db, rm)

	hs := httpapi.NewHTTPServer(c, logger, db, us, ms, mgs)

	return &App{config: c, logger: logger, db: db, http: hs}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run blocks until ctx is cancelled or a termination signal arrives, then
// shuts the HTTP server down and closes the store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.HTTPAddr, "dsn", app.config.DatabaseDSN)

	app.initSignalHandler(ctx, cancelFunc)

	runErr := app.http.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "http server error", "error", runErr)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
