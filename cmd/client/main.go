package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-locator/internal/adapter"
	"github.com/MKhiriev/go-pet-locator/internal/client"
	"github.com/MKhiriev/go-pet-locator/internal/config"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/service"
	"github.com/MKhiriev/go-pet-locator/internal/store"
	"github.com/MKhiriev/go-pet-locator/internal/tui"
	"github.com/MKhiriev/go-pet-locator/internal/workers"
	"github.com/MKhiriev/go-pet-locator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewClientLogger("pet-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	gateway, err := adapter.NewHTTPLedgerGateway(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create ledger gateway")
	}

	relayer, err := adapter.NewHTTPRelayer(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create relayer")
	}

	// the cache only speeds up start-up, the client works without it
	var cache store.RecordCache
	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("record cache disabled")
	} else {
		defer storages.Close()
		cache = storages.RecordCache
	}

	services := service.NewClientServices(gateway, relayer, cache, *cfg, log)

	jobs := workers.NewWorkers(
		workers.NewRefreshWorker(services.Records, cfg.Workers.RefreshInterval, log),
	)

	app := client.NewApp(services, tui.New(services, buildInfo, log), jobs, log)
	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
	}
}
