// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the signer session and devnet proof settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the ledger and relayer endpoints used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local record cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the devnet simulator.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Status holds auto-dismiss delays of user-visible statuses.
	Status Status `envPrefix:"STATUS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// SessionToken is the JWT handed over by the wallet bridge. Its subject
	// is the connected wallet address; it is sent as bearer auth on every
	// signer-bound ledger call.
	// Env: APP_SESSION_TOKEN
	SessionToken string `env:"SESSION_TOKEN"`

	// ProofKey is the HMAC key the devnet uses to issue and check input and
	// decryption proofs.
	// Env: APP_PROOF_KEY
	ProofKey string `env:"PROOF_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the outbound endpoints of the client.
type Adapter struct {
	// LedgerAddress is the base URL of the ledger node RPC
	// (e.g. "http://localhost:8545").
	// Env: ADAPTER_LEDGER_ADDRESS
	LedgerAddress string `env:"LEDGER_ADDRESS"`

	// RelayerAddress is the base URL of the encryption/decryption relayer.
	// Env: ADAPTER_RELAYER_ADDRESS
	RelayerAddress string `env:"RELAYER_ADDRESS"`

	// RequestTimeout bounds every single outbound HTTP request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ConfirmationPollInterval is how often a submitted transaction is
	// polled until it is finalized.
	// Env: ADAPTER_CONFIRMATION_POLL_INTERVAL
	ConfirmationPollInterval time.Duration `env:"CONFIRMATION_POLL_INTERVAL"`
}

// Storage groups the configuration for the local record cache.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite record cache.
type DB struct {
	// DSN is the SQLite file path (e.g. "./pets.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings of the devnet simulator.
type Server struct {
	// HTTPAddress is the TCP address the devnet listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ConfirmationDelay is how long a devnet transaction stays pending.
	// Env: SERVER_CONFIRMATION_DELAY
	ConfirmationDelay time.Duration `env:"CONFIRMATION_DELAY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often the record set is reloaded in the
	// background. Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Status holds how long finished operations stay on screen.
type Status struct {
	// SuccessTTL, Env: STATUS_SUCCESS_TTL (default 2s).
	SuccessTTL time.Duration `env:"SUCCESS_TTL"`
	// ErrorTTL, Env: STATUS_ERROR_TTL (default 3s).
	ErrorTTL time.Duration `env:"ERROR_TTL"`
}

// Defaults applied when no source sets a value.
const (
	DefaultRequestTimeout           = 30 * time.Second
	DefaultConfirmationPollInterval = time.Second
	DefaultRefreshInterval          = time.Minute
	DefaultSuccessTTL               = 2 * time.Second
	DefaultErrorTTL                 = 3 * time.Second
	DefaultDevnetAddress            = "localhost:8545"
	DefaultConfirmationDelay        = 500 * time.Millisecond
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			RequestTimeout:           DefaultRequestTimeout,
			ConfirmationPollInterval: DefaultConfirmationPollInterval,
		},
		Server: Server{
			HTTPAddress:       DefaultDevnetAddress,
			RequestTimeout:    DefaultRequestTimeout,
			ConfirmationDelay: DefaultConfirmationDelay,
		},
		Workers: Workers{RefreshInterval: DefaultRefreshInterval},
		Status:  Status{SuccessTTL: DefaultSuccessTTL, ErrorTTL: DefaultErrorTTL},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Built-in defaults fill whatever is still unset.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
