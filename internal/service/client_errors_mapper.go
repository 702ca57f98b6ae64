// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-record-vault/internal/adapter"
	"github.com/MKhiriev/go-record-vault/models"
)

// Messages shown when the record service gave no text of its own.
const (
	MsgSaveRejected    = "The record could not be saved"
	MsgDecryptRejected = "The record could not be decrypted"
)

// ValidationError is a save the record service rejected with a status
// object.
type ValidationError struct {
	Status  int
	Message string
}

func newValidationError(status models.ServiceStatus) *ValidationError {
	msg := status.FirstMessage()
	if msg == "" {
		msg = MsgSaveRejected
	}
	return &ValidationError{Status: status.Status, Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrorMessage returns the text the editor shows for err. A nil error maps
// to the empty string, which the editor reads as success.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var te *adapter.TransportError
	if errors.As(err, &te) {
		return te.Message
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	var re *adapter.RejectedError
	if errors.As(err, &re) {
		if re.Message == "" {
			return MsgDecryptRejected
		}
		return re.Message
	}

	return err.Error()
}
