package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// SessionToken is the signer session JWT; empty means "not connected".
	SessionToken string
	// Version is shown in the UI footer.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	LedgerAddress            string
	RelayerAddress           string
	RequestTimeout           time.Duration
	ConfirmationPollInterval time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the record cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the record set is reloaded.
	RefreshInterval time.Duration
}

// ClientStatus contains how long finished operations stay visible.
type ClientStatus struct {
	SuccessTTL time.Duration
	ErrorTTL   time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Status  ClientStatus
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			SessionToken: cfg.App.SessionToken,
			Version:      cfg.App.Version,
		},
		Adapter: ClientAdapter{
			LedgerAddress:            cfg.Adapter.LedgerAddress,
			RelayerAddress:           cfg.Adapter.RelayerAddress,
			RequestTimeout:           cfg.Adapter.RequestTimeout,
			ConfirmationPollInterval: cfg.Adapter.ConfirmationPollInterval,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Status: ClientStatus{
			SuccessTTL: cfg.Status.SuccessTTL,
			ErrorTTL:   cfg.Status.ErrorTTL,
		},
	}

	return clientCfg, clientCfg.validate()
}
