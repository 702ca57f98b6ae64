// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-record-vault/internal/crypto"
	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/metrics"
	"github.com/MKhiriev/go-record-vault/internal/store"
	"github.com/MKhiriev/go-record-vault/models"
)

type recordService struct {
	recordRepository store.RecordRepository
	cipher           crypto.Cipher
	metrics          *metrics.Metrics

	logger *logger.Logger
}

// NewRecordService returns the unvalidated core service. Use
// [NewRecordValidationService] to wrap it before exposing it.
func NewRecordService(recordRepository store.RecordRepository, cipher crypto.Cipher, m *metrics.Metrics, logger *logger.Logger) (RecordService, error) {
	if cipher == nil {
		return nil, ErrNilCipher
	}

	return &recordService{
		recordRepository: recordRepository,
		cipher:           cipher,
		metrics:          m,
		logger:           logger,
	}, nil
}

func (s *recordService) List(ctx context.Context) ([]models.Record, error) {
	return s.recordRepository.List(ctx)
}

func (s *recordService) Create(ctx context.Context, record models.NewRecord) (models.Record, error) {
	encrypted, err := s.encrypt(record.Data)
	if err != nil {
		return models.Record{}, err
	}

	return s.recordRepository.Create(ctx, encrypted)
}

func (s *recordService) Update(ctx context.Context, record models.NewRecord) (models.Record, error) {
	exists, err := s.recordRepository.Exists(ctx, record.ID)
	if err != nil {
		return models.Record{}, err
	}
	if !exists {
		return models.Record{}, fmt.Errorf("%w: id %d", ErrRecordNotFound, record.ID)
	}

	encrypted, err := s.encrypt(record.Data)
	if err != nil {
		return models.Record{}, err
	}

	updated, err := s.recordRepository.Update(ctx, record.ID, encrypted)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.Record{}, fmt.Errorf("%w: id %d", ErrRecordNotFound, record.ID)
	}
	return updated, err
}

func (s *recordService) GetDecrypted(ctx context.Context, id int64) (models.Record, error) {
	stored, err := s.recordRepository.Get(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.Record{}, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}
	if err != nil {
		return models.Record{}, err
	}

	plaintext, err := s.cipher.Decrypt(stored.Data)
	s.metrics.IncrementCrypto(metrics.OpDecrypt, err)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Str("func", "recordService.GetDecrypted").Msg("decryption failed")
		return models.Record{}, err
	}

	return models.Record{ID: stored.ID, Data: plaintext}, nil
}

func (s *recordService) encrypt(data string) (string, error) {
	encrypted, err := s.cipher.Encrypt(data)
	s.metrics.IncrementCrypto(metrics.OpEncrypt, err)
	if err != nil {
		s.logger.Err(err).Str("func", "recordService.encrypt").Msg("encryption failed")
		return "", err
	}
	return encrypted, nil
}
