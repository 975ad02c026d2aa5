// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/models"
)

type recordCacheRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewRecordCacheRepository returns a [RecordCache] backed by db.
func NewRecordCacheRepository(db *DB, logger *logger.Logger) RecordCache {
	return &recordCacheRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *recordCacheRepository) ReplaceRecords(ctx context.Context, records []models.Record) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "recordCacheRepository.ReplaceRecords").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrTxBeginFailed, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteAllRecordsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrQueryBuild, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "recordCacheRepository.ReplaceRecords").Msg("failed to clear cached records")
		return fmt.Errorf("failed to clear cached records: %w", err)
	}

	cachedAt := r.now().UTC()
	for i, record := range records {
		query, args, err = buildInsertRecordQuery(i, record, cachedAt)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrQueryBuild, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "recordCacheRepository.ReplaceRecords").
				Str("id", record.ID).
				Msg("failed to insert cached record")
			return fmt.Errorf("failed to cache record (id=%s): %w", record.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "recordCacheRepository.ReplaceRecords").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrTxCommitFailed, err)
	}

	log.Debug().Str("func", "recordCacheRepository.ReplaceRecords").
		Int("records", len(records)).Msg("record cache replaced")
	return nil
}

func (r *recordCacheRepository) GetAllRecords(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllRecordsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryBuild, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "recordCacheRepository.GetAllRecords").Msg("failed to query cached records")
		return nil, fmt.Errorf("%w: %w", ErrCacheReadFailed, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		var record models.Record
		scanErr := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Creator,
			&record.Timestamp,
			&record.PublicValue1,
			&record.PublicValue2,
			&record.Description,
			&record.IsVerified,
			&record.DecryptedValue,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "recordCacheRepository.GetAllRecords").Msg("failed to scan cached record")
			return nil, fmt.Errorf("%w: %w", ErrCacheReadFailed, scanErr)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCacheReadFailed, err)
	}

	return records, nil
}
