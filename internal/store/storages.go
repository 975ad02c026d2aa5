package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-locator/internal/config"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
)

// ClientStorages groups the client-side storage repositories.
type ClientStorages struct {
	// RecordCache is the SQLite snapshot of the ledger record set.
	RecordCache RecordCache

	db *DB
}

// NewClientStorages opens the SQLite file at cfg.DB.DSN, runs pending
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		RecordCache: NewRecordCacheRepository(db, logger),
		db:          db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
