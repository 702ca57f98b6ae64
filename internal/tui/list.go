// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-record-vault/internal/service"
	"github.com/MKhiriev/go-record-vault/models"
)

const emptyListText = "No encrypted data to display"

type listModel struct {
	idx       int
	reloading bool
	spinner   spinner.Model
	status    string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s}
}

// current returns the record under the cursor.
func (m listModel) current(state service.ManagerState) (models.Record, bool) {
	if m.idx < 0 || m.idx >= len(state.Records) {
		return models.Record{}, false
	}
	return state.Records[m.idx], true
}

func (m listModel) clamp(state service.ManagerState) listModel {
	if m.idx >= len(state.Records) {
		m.idx = len(state.Records) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m listModel) View(state service.ManagerState) string {
	title := appName
	if state.Loading || m.reloading {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case state.Loading:
		b.WriteString("Loading…\n")
	case state.Empty():
		b.WriteString(emptyListText + "\n")
	default:
		for i, rec := range state.Sorted() {
			cursor := "  "
			line := fmt.Sprintf("%4d  %s", rec.ID, service.Summary(rec.Data))
			if i == m.idx {
				cursor = "> "
				line = cursorStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	if state.LoadErr != nil {
		b.WriteString("\n" + errorStyle.Render("Could not load records: "+service.ErrorMessage(state.LoadErr)) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(title, b.String(), "n new  enter edit  r reload  v about  q quit")
}
