// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists records of the record service in a relational
// database. PostgreSQL (through pgx) and SQLite are supported; the DSN picks
// the driver. Queries are built with squirrel so both placeholder styles are
// served by the same code.
package store

import (
	"context"

	"github.com/MKhiriev/go-record-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_repository_mock.go -package=mock

// RecordRepository stores records. Data is stored exactly as given; callers
// encrypt before writing.
type RecordRepository interface {
	// List returns every record ordered by id.
	List(ctx context.Context) ([]models.Record, error)

	// Get returns the record with the given id or [ErrRecordNotFound].
	Get(ctx context.Context, id int64) (models.Record, error)

	// Exists reports whether a record with the given id is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts a record and returns it with its new id.
	Create(ctx context.Context, data string) (models.Record, error)

	// Update replaces the body of an existing record. Returns
	// [ErrRecordNotFound] when the id is unknown.
	Update(ctx context.Context, id int64, data string) (models.Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// another attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
