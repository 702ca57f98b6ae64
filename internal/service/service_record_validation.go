// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-record-vault/internal/metrics"
	"github.com/MKhiriev/go-record-vault/internal/validators"
	"github.com/MKhiriev/go-record-vault/models"
)

// RecordValidationService rejects record bodies the cipher cannot accept
// before they reach the inner service.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
	metrics   *metrics.Metrics
}

// NewRecordValidationService validates bodies against maxLen, the
// cipher's plaintext limit in bytes.
func NewRecordValidationService(maxLen int, m *metrics.Metrics) RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(maxLen),
		metrics:   m,
	}
}

func (v *RecordValidationService) List(ctx context.Context) ([]models.Record, error) {
	return v.inner.List(ctx)
}

func (v *RecordValidationService) Create(ctx context.Context, record models.NewRecord) (models.Record, error) {
	if err := v.validate(ctx, record); err != nil {
		return models.Record{}, err
	}

	return v.inner.Create(ctx, record)
}

func (v *RecordValidationService) Update(ctx context.Context, record models.NewRecord) (models.Record, error) {
	if err := v.validate(ctx, record); err != nil {
		return models.Record{}, err
	}

	return v.inner.Update(ctx, record)
}

func (v *RecordValidationService) GetDecrypted(ctx context.Context, id int64) (models.Record, error) {
	return v.inner.GetDecrypted(ctx, id)
}

func (v *RecordValidationService) Wrap(inner RecordService) RecordService {
	v.inner = inner
	return v
}

func (v *RecordValidationService) validate(ctx context.Context, record models.NewRecord) error {
	if err := v.validator.Validate(ctx, record); err != nil {
		v.metrics.IncrementValidationFailures()
		return fmt.Errorf("error during record validation before saving: %w", err)
	}
	return nil
}
