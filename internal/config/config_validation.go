// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks invariants shared by every binary. Per-binary checks live
// on the projected views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Status.SuccessTTL < 0 || cfg.Status.ErrorTTL < 0 {
		return ErrInvalidStatusConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.LedgerAddress == "" || cfg.Adapter.RelayerAddress == "" ||
		cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.ConfirmationPollInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Status.SuccessTTL <= 0 || cfg.Status.ErrorTTL <= 0 {
		return ErrInvalidStatusConfigs
	}

	return nil
}

func (cfg *DevnetConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 || cfg.ConfirmationDelay < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.ProofKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
