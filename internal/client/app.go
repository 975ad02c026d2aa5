package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pet-locator/internal/app"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/service"
	"github.com/MKhiriev/go-pet-locator/internal/workers"
	"github.com/MKhiriev/go-pet-locator/models"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, w *workers.Workers, logger *logger.Logger) *App {
	return &App{services: services, ui: ui, workers: w, logger: logger}
}

// Run primes the record list from the local cache, checks the relayer,
// starts the background workers and blocks in the UI until the user quits or
// the process is signalled. An unreachable relayer is reported on the session
// status and is not fatal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	if cached, err := a.services.Records.LoadCached(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.run").Msg("starting without cached records")
	} else {
		a.logger.Info().Int("records", len(cached)).Msg("cached records loaded")
	}

	if err := a.services.Encryption.Ready(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.run").Msg("relayer not reachable at start")
		a.services.Status.Set(service.ScopeSession, models.StatusError, fmt.Sprintf(app.StatusRelayerUnavailable, err.Error()))
	}

	if !a.services.Session.Connected() {
		a.logger.Warn().Str("func", "*App.run").Msg("no signer session, running read-only")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	return nil
}
