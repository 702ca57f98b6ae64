// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// FieldError is a single validation failure reported by the record service.
type FieldError struct {
	// DefaultMessage is the human-readable text shown next to the field.
	DefaultMessage string `json:"defaultMessage"`
	// Field names the offending request field, when known.
	Field string `json:"field,omitempty"`
}

// ServiceStatus is the status object the record service returns instead of
// a record when a request is rejected.
type ServiceStatus struct {
	Status  int          `json:"status,omitempty"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Message string       `json:"message,omitempty"`
}

// FirstMessage returns the message of the first validation error, or the
// top-level message when there are no validation errors.
func (s ServiceStatus) FirstMessage() string {
	if len(s.Errors) > 0 {
		return s.Errors[0].DefaultMessage
	}
	return s.Message
}

// SaveResponse is the decoded reply to a create or update call. The service
// answers with either a record or a status object; both shapes share one
// JSON object so they are decoded together.
type SaveResponse struct {
	Record
	ServiceStatus
}

// Failed reports whether the reply carries a status other than 200.
// A reply without a status field is a record and counts as success.
func (r SaveResponse) Failed() bool {
	return r.Status != 0 && r.Status != 200
}

// UnmarshalJSON decodes both embedded shapes from the same object.
func (r *SaveResponse) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &r.Record); err != nil {
		return err
	}
	return json.Unmarshal(b, &r.ServiceStatus)
}
