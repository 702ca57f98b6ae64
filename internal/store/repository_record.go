// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository returns a [RecordRepository] backed by db.
func NewRecordRepository(db *DB, log *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: log,
	}
}

func (r *recordRepository) List(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx).With().Str("func", "recordRepository.List").Logger()

	query, args, err := r.listRecordsQuery().ToSql()
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var records []models.Record
	err = r.withRetry(ctx, func() error {
		rows, err := r.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		records = make([]models.Record, 0)
		for rows.Next() {
			var rec models.Record
			if err = rows.Scan(&rec.ID, &rec.Data); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			records = append(records, rec)
		}

		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Msg("failed to list records")
		return nil, err
	}

	log.Debug().Int("count", len(records)).Msg("records listed")
	return records, nil
}

func (r *recordRepository) Get(ctx context.Context, id int64) (models.Record, error) {
	log := logger.FromContext(ctx).With().Str("func", "recordRepository.Get").Int64("id", id).Logger()

	query, args, err := r.getRecordQuery(id).ToSql()
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := r.queryRecord(ctx, query, args)
	if err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			log.Err(err).Msg("failed to get record")
		}
		return models.Record{}, err
	}

	return rec, nil
}

func (r *recordRepository) Exists(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx).With().Str("func", "recordRepository.Exists").Int64("id", id).Logger()

	query, args, err := r.existsRecordQuery(id).ToSql()
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	err = r.withRetry(ctx, func() error {
		var one int
		err := r.QueryRowContext(ctx, query, args...).Scan(&one)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			exists = false
			return nil
		case err != nil:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		exists = true
		return nil
	})
	if err != nil {
		log.Err(err).Msg("failed to check record existence")
		return false, err
	}

	return exists, nil
}

func (r *recordRepository) Create(ctx context.Context, data string) (models.Record, error) {
	log := logger.FromContext(ctx).With().Str("func", "recordRepository.Create").Logger()

	query, args, err := r.insertRecordQuery(data).ToSql()
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := r.queryRecord(ctx, query, args)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			err = ErrRecordNotSaved
		}
		log.Err(err).Msg("failed to create record")
		return models.Record{}, err
	}

	log.Info().Int64("id", rec.ID).Msg("record created")
	return rec, nil
}

func (r *recordRepository) Update(ctx context.Context, id int64, data string) (models.Record, error) {
	log := logger.FromContext(ctx).With().Str("func", "recordRepository.Update").Int64("id", id).Logger()

	query, args, err := r.updateRecordQuery(id, data).ToSql()
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := r.queryRecord(ctx, query, args)
	if err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			log.Err(err).Msg("failed to update record")
		}
		return models.Record{}, err
	}

	log.Info().Msg("record updated")
	return rec, nil
}

func (r *recordRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx).With().Str("func", "recordRepository.Count").Logger()

	query, args, err := r.countRecordsQuery().ToSql()
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	err = r.withRetry(ctx, func() error {
		if err := r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Msg("failed to count records")
		return 0, err
	}

	return count, nil
}

// queryRecord runs a query expected to yield a single (id, data) row.
func (r *recordRepository) queryRecord(ctx context.Context, query string, args []any) (models.Record, error) {
	var rec models.Record
	err := r.withRetry(ctx, func() error {
		err := r.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &rec.Data)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		case err != nil:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	})

	return rec, err
}
