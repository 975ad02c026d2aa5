package config

import (
	"fmt"
	"time"
)

// DevnetConfig holds the settings of the local ledger/relayer simulator.
type DevnetConfig struct {
	HTTPAddress       string
	RequestTimeout    time.Duration
	ConfirmationDelay time.Duration
	ProofKey          string
}

// GetDevnetConfig builds and validates the devnet config view from the
// merged structured configuration.
func GetDevnetConfig() (*DevnetConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newDevnetConfig(cfg)
}

func newDevnetConfig(cfg *StructuredConfig) (*DevnetConfig, error) {
	devnetCfg := &DevnetConfig{
		HTTPAddress:       cfg.Server.HTTPAddress,
		RequestTimeout:    cfg.Server.RequestTimeout,
		ConfirmationDelay: cfg.Server.ConfirmationDelay,
		ProofKey:          cfg.App.ProofKey,
	}

	return devnetCfg, devnetCfg.validate()
}
