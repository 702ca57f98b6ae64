// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-record-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_service_mock.go -package=mock -exclude_interfaces=RecordServiceWrapper

// RecordService is the record service's business layer. Bodies are
// encrypted before they reach the repository and are only ever decrypted
// on explicit request.
type RecordService interface {
	// List returns every stored record with its ciphertext body.
	List(ctx context.Context) ([]models.Record, error)

	// Create validates and encrypts the body, stores it and returns the
	// stored record.
	Create(ctx context.Context, record models.NewRecord) (models.Record, error)

	// Update validates the body, checks the id exists, encrypts the body
	// and replaces the stored one.
	Update(ctx context.Context, record models.NewRecord) (models.Record, error)

	// GetDecrypted returns the record with its body decrypted.
	GetDecrypted(ctx context.Context, id int64) (models.Record, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// validation.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService
}
