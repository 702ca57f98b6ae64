// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrRecordNotFound is returned when an id names no record: either the
	// record service has none, or the client list does not contain it.
	ErrRecordNotFound = errors.New("record not found")

	// ErrVersionIsNotSpecified is returned when the service starts without
	// an application version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNilCipher is returned when the record service is built without a
	// cipher.
	ErrNilCipher = errors.New("cipher is not configured")
)

var (
	// ErrNothingToDecrypt is returned when decryption is requested for a
	// record that was never saved.
	ErrNothingToDecrypt = errors.New("record has no stored body to decrypt")

	// ErrStillLoading is returned when an existing record is opened before
	// the list finished loading.
	ErrStillLoading = errors.New("records are still loading")
)
