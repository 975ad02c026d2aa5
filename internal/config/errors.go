package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a missing ledger address or a zero poll interval).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty DSN or an in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidStatusConfigs indicates non-positive status TTLs.
	ErrInvalidStatusConfigs = errors.New("invalid status configuration")
	// ErrInvalidServerConfigs indicates invalid devnet server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid devnet app settings
	// (for example, a missing proof key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
