// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-record-vault/internal/service"
	"github.com/MKhiriev/go-record-vault/models"
)

// clipboardWriter is swapped in tests.
var (
	defaultClipboardWriter = clipboard.WriteAll
	clipboardWriter        = defaultClipboardWriter
)

func cmdLoad(ctx context.Context, manager service.RecordManager) tea.Cmd {
	return func() tea.Msg {
		records, err := manager.Load(ctx)
		return recordsLoadedMsg{records: records, err: err}
	}
}

func cmdDecrypt(ctx context.Context, manager service.RecordManager, rec models.Record, session, gen uint64) tea.Cmd {
	return func() tea.Msg {
		plaintext, err := manager.Decrypt(ctx, rec)
		return decryptDoneMsg{session: session, generation: gen, plaintext: plaintext, err: err}
	}
}

func cmdSave(ctx context.Context, manager service.RecordManager, rec models.Record, session, gen uint64) tea.Cmd {
	return func() tea.Msg {
		_, err := manager.Save(ctx, rec)
		return saveDoneMsg{session: session, generation: gen, err: err}
	}
}

func cmdNavigate(path string) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{path: path}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWriter(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
