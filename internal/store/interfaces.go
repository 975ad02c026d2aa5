// Package store persists the last committed record snapshot in a local SQLite
// database so the client can show records before the first ledger refresh
// completes.
//
// Only ledger-public data is stored. Decrypted coordinates held by the
// client for an open record are never written here.
package store

import (
	"context"

	"github.com/MKhiriev/go-pet-locator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordCache is the local snapshot of the ledger record set.
type RecordCache interface {
	// ReplaceRecords atomically replaces the cached snapshot with records,
	// keeping their order.
	ReplaceRecords(ctx context.Context, records []models.Record) error

	// GetAllRecords returns the cached snapshot in the order it was saved.
	GetAllRecords(ctx context.Context) ([]models.Record, error)
}
