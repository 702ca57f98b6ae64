// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// InternalServerErrorMessage is what the user sees for any transport failure.
const InternalServerErrorMessage = "An internal server error occurred"

var (
	ErrMalformedBody   = errors.New("malformed response body")
	ErrRequestRejected = errors.New("request rejected by record service")
	ErrEmptyAddress    = errors.New("empty address")
)

// TransportError reports that a request did not produce a usable reply.
type TransportError struct {
	// ServerError is always true.
	ServerError bool
	// Message is the user-facing text, [InternalServerErrorMessage].
	Message string
	// Err is the underlying cause.
	Err error
}

func newTransportError(cause error) *TransportError {
	return &TransportError{
		ServerError: true,
		Message:     InternalServerErrorMessage,
		Err:         cause,
	}
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectedError is returned when the record service answered with a status
// object where a record was expected.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", ErrRequestRejected, e.Status, e.Message)
}

// Is makes errors.Is(err, ErrRequestRejected) match.
func (e *RejectedError) Is(target error) bool {
	return target == ErrRequestRejected
}

// IsTransportError reports whether err carries a *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
