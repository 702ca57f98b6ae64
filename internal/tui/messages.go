// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-record-vault/models"
)

// navigateMsg asks the app to show the view at path.
type navigateMsg struct {
	path string
}

type recordsLoadedMsg struct {
	records []models.Record
	err     error
}

// decryptDoneMsg and saveDoneMsg carry the editor session and generation of
// the request that produced them.
type decryptDoneMsg struct {
	session    uint64
	generation uint64
	plaintext  string
	err        error
}

type saveDoneMsg struct {
	session    uint64
	generation uint64
	err        error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
