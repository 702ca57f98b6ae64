// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-record-vault/models"
)

// ManagerState is the record list as seen by the client. It is a value:
// every transition returns a new state and leaves the receiver untouched.
type ManagerState struct {
	// Loading is true until the first load completes.
	Loading bool
	// Records is sorted ascending by id.
	Records []models.Record
	// LoadErr is the error of the most recent load, if it failed.
	LoadErr error
}

// NewManagerState returns the state before the first load.
func NewManagerState() ManagerState {
	return ManagerState{Loading: true, Records: []models.Record{}}
}

// Loaded returns the state after a load finished. The list is replaced as a
// whole; a failed load leaves an empty list and keeps the error.
func (s ManagerState) Loaded(records []models.Record, err error) ManagerState {
	if err != nil {
		return ManagerState{Records: []models.Record{}, LoadErr: err}
	}

	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []models.Record{}
	}
	slices.SortStableFunc(sorted, func(a, b models.Record) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return ManagerState{Records: sorted}
}

// Empty reports whether a finished load produced no records.
func (s ManagerState) Empty() bool {
	return !s.Loading && len(s.Records) == 0
}

// Sorted returns a copy of the records, ascending by id.
func (s ManagerState) Sorted() []models.Record {
	return slices.Clone(s.Records)
}

// SelectForEdit resolves the id segment of an editor path to the record the
// editor starts from. "new" yields an empty record; a known id yields a copy
// of the listed record; anything else yields [ErrRecordNotFound].
func (s ManagerState) SelectForEdit(id string) (models.Record, error) {
	id = strings.TrimSpace(id)
	if id == models.NewRecordToken {
		return models.Record{}, nil
	}
	if s.Loading {
		return models.Record{}, ErrStillLoading
	}

	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || numericID <= 0 {
		return models.Record{}, ErrRecordNotFound
	}

	idx := slices.IndexFunc(s.Records, func(r models.Record) bool {
		return r.ID == numericID
	})
	if idx < 0 {
		return models.Record{}, ErrRecordNotFound
	}

	return s.Records[idx], nil
}
