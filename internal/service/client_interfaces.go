// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-record-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/record_manager_mock.go -package=mock

// RecordManager is the client-side owner of the record list. It loads the
// list, persists records coming out of the editor and fetches decrypted
// bodies. The list itself lives in a [ManagerState] value held by the caller.
type RecordManager interface {
	// Load fetches all records from the record service. On success the
	// records are returned in service order; pass them to
	// [ManagerState.Loaded] to get the sorted list. On a transport failure
	// it returns a nil slice and the *adapter.TransportError.
	Load(ctx context.Context) ([]models.Record, error)

	// Save creates the record when it has no id and updates it otherwise.
	// A nil error means the record service accepted the record; the caller
	// returns to the list and reloads it. A rejected save returns a
	// *ValidationError carrying the first message reported by the service,
	// a transport failure returns the *adapter.TransportError. Use
	// [ErrorMessage] to turn either into the text shown in the editor.
	Save(ctx context.Context, record models.Record) (models.Record, error)

	// Decrypt asks the record service for the plaintext of a stored record.
	// Nothing is persisted and the list is not touched. Records without an
	// id return [ErrNothingToDecrypt].
	Decrypt(ctx context.Context, record models.Record) (string, error)
}
