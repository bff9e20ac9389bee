// Package server assembles and runs the Stadtwache development backend: an
// in-memory store behind the REST surface the client expects. It seeds one
// account at startup and shuts down gracefully on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/stadtwache/patrol/internal/common"
	"github.com/stadtwache/patrol/internal/server/config"
	"github.com/stadtwache/patrol/internal/server/httpapi"
	"github.com/stadtwache/patrol/internal/server/store"
)

type App struct {
	config *config.Config
	logger *slog.Logger
	store  *store.Store
	api    *httpapi.API
}

func NewApp(c *config.Config) (*App, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	st := store.New()

	seed, err := st.CreateUser(c.SeedEmail, c.SeedUsername, c.SeedPassword, "Zentrale", "", "")
	if err != nil && !errors.Is(err, common.ErrAlreadyExists) {
		return nil, fmt.Errorf("seeding account: %w", err)
	}
	logger.Info("seed account ready", "email", seed.Email)

	api := httpapi.New(st, []byte(c.SecretKey), c.TokenValidity, logger)

	return &App{config: c, logger: logger, store: st, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the REST API until ctx is cancelled or a termination signal
// arrives, then drains in-flight requests within the shutdown timeout.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{Addr: app.config.Address, Handler: app.api.Router()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error("shutdown", "error", err)
		}
	}()

	app.logger.Info("starting dev server", "address", app.config.Address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error("server stopped", "error", err)
	}
}
