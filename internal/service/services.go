// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-record-vault/internal/adapter"
	"github.com/MKhiriev/go-record-vault/internal/config"
	"github.com/MKhiriev/go-record-vault/internal/crypto"
	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/metrics"
	"github.com/MKhiriev/go-record-vault/internal/store"
)

// Services groups the record service's business layer.
type Services struct {
	RecordService  RecordService
	AppInfoService AppInfoService
}

// NewServices builds the record service on top of the repositories. The
// core service is wrapped with body validation sized to the cipher.
func NewServices(repositories *store.Repositories, cipher crypto.Cipher, cfg config.App, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	core, err := NewRecordService(repositories.RecordRepository, cipher, m, logger)
	if err != nil {
		return nil, fmt.Errorf("record service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		RecordService:  NewRecordValidationService(cipher.MaxPlaintextLen(), m).Wrap(core),
		AppInfoService: appInfo,
	}, nil
}

// ClientServices groups the client's business layer.
type ClientServices struct {
	RecordManager RecordManager
}

func NewClientServices(recordAdapter adapter.RecordAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		RecordManager: NewRecordManager(recordAdapter, logger),
	}
}
