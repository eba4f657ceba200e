// Package devserver is an in-process implementation of the reservation REST
// backend for local development and tests. It keeps data in memory, or in
// PostgreSQL when a DSN is configured.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/reservas/internal/devserver/config"
	"github.com/dmitrijs2005/reservas/internal/logging"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	store  Store
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		store Store
		err   error
	)
	if c.DatabaseDSN != "" {
		store, err = OpenPostgres(ctx, c.DatabaseDSN, c.SeedEmail, c.SeedPassword)
	} else {
		store, err = NewMemoryStore(c.SeedEmail, c.SeedPassword)
	}
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	return &App{config: c, logger: logger, store: store}, nil
}

func (app *App) Handler() http.Handler {
	h := NewHandler(app.store, []byte(app.config.SecretKey), app.config.TokenTTL, app.logger)
	return NewRouter(h, app.logger)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until a termination signal arrives or ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.store.Close()

	app.initSignalHandler(cancelFunc)

	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return err
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           app.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
