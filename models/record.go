// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// NewRecordToken is the navigation token that denotes a record which has not
// been created on the record service yet.
const NewRecordToken = "new"

// Record is a single entry stored by the record service.
//
// A zero ID means the record has not been created yet. Data holds the
// ciphertext as returned by the service, or plaintext after an explicit
// decrypt in the editor.
type Record struct {
	ID   int64  `json:"id,omitempty"`
	Data string `json:"data"`
}

// IsNew reports whether the record has no server-assigned identifier.
func (r Record) IsNew() bool {
	return r.ID == 0
}

// IDString renders the identifier the way it appears in navigation paths.
// New records render as [NewRecordToken].
func (r Record) IDString() string {
	if r.IsNew() {
		return NewRecordToken
	}
	return strconv.FormatInt(r.ID, 10)
}

// NewRecord is the request body accepted by the create and update endpoints.
// On update the identifier from the path wins over ID.
type NewRecord struct {
	ID   int64  `json:"id,omitempty"`
	Data string `json:"data"`
}
