// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's data access layer for the record service.
//
// [DataAccessClient] performs one JSON request and hands back the parsed
// body whatever the HTTP status is; business and validation errors embedded
// in the body are for the caller to interpret. Every transport failure
// (connection refused, broken body, unparseable JSON) surfaces as a
// [*TransportError] so callers tell it apart from a rejected request with
// [errors.As] or [IsTransportError].
//
// [RecordAdapter] adds typed calls for the four record endpoints on top.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-record-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_adapter_mock.go -package=mock

// DataAccessClient performs a single request against the record service.
type DataAccessClient interface {
	// Request sends body (when non-nil) as JSON to path with the given
	// method and returns the parsed response body. Non-2xx statuses are not
	// errors. Transport failures return a *TransportError. There are no
	// retries; the only deadline is the configured request timeout or one
	// carried by ctx.
	Request(ctx context.Context, method, path string, body any) (json.RawMessage, error)
}

// RecordAdapter exposes the record service endpoints as typed calls.
type RecordAdapter interface {
	DataAccessClient

	// ListRecords calls GET /data. A body that is not a JSON array of
	// records is reported as a *TransportError.
	ListRecords(ctx context.Context) ([]models.Record, error)

	// CreateRecord calls POST /data with {data}. The reply is either the
	// created record or a status object; both come back decoded in
	// [models.SaveResponse].
	CreateRecord(ctx context.Context, record models.Record) (models.SaveResponse, error)

	// UpdateRecord calls PUT /data/{id} with {id, data}. The reply shape is
	// the same as for CreateRecord.
	UpdateRecord(ctx context.Context, record models.Record) (models.SaveResponse, error)

	// GetDecryptedRecord calls GET /data/{id}/decrypted and returns the
	// record carrying plaintext. A status object in the reply is returned
	// as a *RejectedError.
	GetDecryptedRecord(ctx context.Context, id int64) (models.Record, error)
}
