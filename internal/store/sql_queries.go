// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	recordsTable = "records"

	columnID        = "id"
	columnData      = "data"
	columnUpdatedAt = "updated_at"
)

// returningRecord is appended to writes so the stored row comes back in the
// same round trip. Both PostgreSQL and SQLite 3.35+ support it.
const returningRecord = "RETURNING id, data"

func (db *DB) listRecordsQuery() sq.SelectBuilder {
	return db.builder.
		Select(columnID, columnData).
		From(recordsTable).
		OrderBy(columnID + " ASC")
}

func (db *DB) getRecordQuery(id int64) sq.SelectBuilder {
	return db.builder.
		Select(columnID, columnData).
		From(recordsTable).
		Where(sq.Eq{columnID: id})
}

func (db *DB) existsRecordQuery(id int64) sq.SelectBuilder {
	return db.builder.
		Select("1").
		From(recordsTable).
		Where(sq.Eq{columnID: id}).
		Limit(1)
}

func (db *DB) countRecordsQuery() sq.SelectBuilder {
	return db.builder.
		Select("COUNT(*)").
		From(recordsTable)
}

func (db *DB) insertRecordQuery(data string) sq.InsertBuilder {
	return db.builder.
		Insert(recordsTable).
		Columns(columnData).
		Values(data).
		Suffix(returningRecord)
}

func (db *DB) updateRecordQuery(id int64, data string) sq.UpdateBuilder {
	return db.builder.
		Update(recordsTable).
		Set(columnData, data).
		Set(columnUpdatedAt, sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{columnID: id}).
		Suffix(returningRecord)
}
