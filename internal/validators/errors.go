// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-record-vault/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidRecord   = errors.New("invalid record")
)

// FieldErrors lists every field that failed validation.
type FieldErrors struct {
	Errors []models.FieldError
}

func (e *FieldErrors) add(field, message string) {
	e.Errors = append(e.Errors, models.FieldError{Field: field, DefaultMessage: message})
}

func (e *FieldErrors) orNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

func (e *FieldErrors) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.DefaultMessage)
	}
	return ErrInvalidRecord.Error() + ": " + strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is(err, ErrInvalidRecord) match.
func (e *FieldErrors) Unwrap() error {
	return ErrInvalidRecord
}
