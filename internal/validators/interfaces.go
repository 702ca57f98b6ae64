// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads of the record service before
// they reach the service layer.
//
// A [Validator] validates a value, optionally restricted to named fields.
// Field failures are collected into a [*FieldErrors] so the handler can
// report every message, in the order the fields were checked.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
