// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pet-locator/models"
)

const recordsTable = "records"

var recordColumns = []string{
	"id",
	"name",
	"creator",
	"timestamp",
	"public_value1",
	"public_value2",
	"description",
	"is_verified",
	"decrypted_value",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildDeleteAllRecordsQuery() (string, []any, error) {
	return psql.Delete(recordsTable).ToSql()
}

func buildInsertRecordQuery(position int, record models.Record, cachedAt time.Time) (string, []any, error) {
	return psql.Insert(recordsTable).
		Columns(append([]string{"position", "cached_at"}, recordColumns...)...).
		Values(
			position,
			cachedAt,
			record.ID,
			record.Name,
			record.Creator,
			record.Timestamp,
			record.PublicValue1,
			record.PublicValue2,
			record.Description,
			record.IsVerified,
			record.DecryptedValue,
		).
		ToSql()
}

func buildSelectAllRecordsQuery() (string, []any, error) {
	return psql.Select(recordColumns...).
		From(recordsTable).
		OrderBy("position ASC").
		ToSql()
}
