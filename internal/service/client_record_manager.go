// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-record-vault/internal/adapter"
	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/models"
)

type recordManager struct {
	adapter adapter.RecordAdapter
	logger  *logger.Logger
}

func NewRecordManager(recordAdapter adapter.RecordAdapter, logger *logger.Logger) RecordManager {
	return &recordManager{adapter: recordAdapter, logger: logger}
}

func (m *recordManager) Load(ctx context.Context) ([]models.Record, error) {
	records, err := m.adapter.ListRecords(ctx)
	if err != nil {
		m.logger.Err(err).Msg("loading records failed")
		return nil, fmt.Errorf("load records: %w", err)
	}

	m.logger.Debug().Int("count", len(records)).Msg("records loaded")
	return records, nil
}

func (m *recordManager) Save(ctx context.Context, record models.Record) (models.Record, error) {
	var (
		resp models.SaveResponse
		err  error
	)
	if record.IsNew() {
		resp, err = m.adapter.CreateRecord(ctx, record)
	} else {
		resp, err = m.adapter.UpdateRecord(ctx, record)
	}
	if err != nil {
		m.logger.Err(err).Int64("id", record.ID).Msg("saving record failed")
		return models.Record{}, fmt.Errorf("save record %s: %w", record.IDString(), err)
	}

	if resp.Failed() {
		m.logger.Info().
			Int64("id", record.ID).
			Int("status", resp.Status).
			Msg("record service rejected save")
		return models.Record{}, newValidationError(resp.ServiceStatus)
	}

	return resp.Record, nil
}

func (m *recordManager) Decrypt(ctx context.Context, record models.Record) (string, error) {
	if record.IsNew() {
		return "", ErrNothingToDecrypt
	}

	decrypted, err := m.adapter.GetDecryptedRecord(ctx, record.ID)
	if err != nil {
		m.logger.Err(err).Int64("id", record.ID).Msg("decrypting record failed")
		return "", fmt.Errorf("decrypt record %d: %w", record.ID, err)
	}

	return decrypted.Data, nil
}
