// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-record-vault/internal/editor"
	"github.com/MKhiriev/go-record-vault/models"
)

const (
	bodyWidth  = 64
	bodyHeight = 8
)

// editorModel renders an [editor.Editor]. The id input is never focused so
// the id cannot be changed. session is unique per opened editor; replies
// from an earlier session are dropped.
type editorModel struct {
	session uint64
	state   editor.Editor
	id      textinput.Model
	body    textarea.Model
	status  string
}

func newEditorModel(session uint64, rec *models.Record) editorModel {
	state := editor.New(rec)

	id := textinput.New()
	id.Prompt = ""
	id.Width = 20
	id.SetValue(state.WorkingCopy().IDString())
	id.Blur()

	body := textarea.New()
	body.ShowLineNumbers = false
	body.CharLimit = 0
	body.SetWidth(bodyWidth)
	body.SetHeight(bodyHeight)
	body.SetValue(state.Body().Value)
	body.Focus()

	return editorModel{session: session, state: state, id: id, body: body}
}

// syncBody copies the editor's body into the textarea after a transition
// that replaced it.
func (m editorModel) syncBody() editorModel {
	if m.body.Value() != m.state.Body().Value {
		m.body.SetValue(m.state.Body().Value)
	}
	return m
}

func bodyLabel(b models.Body) string {
	switch b.Kind {
	case models.BodyPlaintext:
		return "Body (decrypted)"
	case models.BodyUserInput:
		return "Body (edited)"
	default:
		return "Body (encrypted)"
	}
}

func (m editorModel) View() string {
	title := "Edit record"
	if m.state.WorkingCopy().IsNew() {
		title = "New record"
	}

	var b strings.Builder
	b.WriteString("ID: " + m.id.View() + "\n\n")
	b.WriteString(bodyLabel(m.state.Body()) + "\n")
	b.WriteString(m.body.View() + "\n")

	switch m.state.Phase() {
	case editor.PhaseDecrypting:
		b.WriteString("\nDecrypting…\n")
	case editor.PhaseSubmitting:
		b.WriteString("\nSaving…\n")
	}
	if msg := m.state.ErrorMessage(); msg != "" {
		b.WriteString("\n" + errorStyle.Render(msg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(title, b.String(), "ctrl+d decrypt  ctrl+s save  ctrl+y copy  esc cancel")
}
