// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-record-vault/internal/editor"
	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/service"
	"github.com/MKhiriev/go-record-vault/models"
)

// appModel is the single root model. It holds the record list, routes
// between the list and the editor and runs every request as a tea.Cmd.
type appModel struct {
	ctx     context.Context
	manager service.RecordManager
	logger  *logger.Logger

	state  service.ManagerState
	route  route
	list   listModel
	editor *editorModel

	// sessions counts opened editors.
	sessions uint64

	// pending is an editor route requested before the list finished loading.
	pending *route

	showConfirm   bool
	confirm       confirmModel
	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
	buildInfo     models.AppBuildInfo
}

func newAppModel(ctx context.Context, manager service.RecordManager, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	return appModel{
		ctx:       ctx,
		manager:   manager,
		logger:    log,
		state:     service.NewManagerState(),
		route:     route{kind: routeList},
		list:      newListModel(),
		buildInfo: buildInfo,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, cmdLoad(m.ctx, m.manager))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case navigateMsg:
		return m.navigate(msg.path)
	case recordsLoadedMsg:
		return m.applyLoaded(msg)
	case decryptDoneMsg:
		return m.applyDecrypt(msg)
	case saveDoneMsg:
		return m.applySave(msg)
	case copiedMsg:
		m.setStatus("Copied!")
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.logger.Err(msg.err).Msg("copy to clipboard failed")
		m.showErrorf("Could not copy to the clipboard")
		return m, nil
	case clearStatusMsg:
		m.setStatus("")
		return m, nil
	case spinner.TickMsg:
		if m.state.Loading || m.list.reloading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.route.kind {
	case routeEditor:
		return m.updateEditor(msg)
	default:
		return m.updateList(msg)
	}
}

func (m appModel) View() string {
	var body string
	switch {
	case m.showBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	case m.route.kind == routeEditor && m.editor != nil:
		body = m.editor.View()
	default:
		body = m.list.View(m.state)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// navigate shows the view at path. Editor paths that name no record fall
// back to the list without a message.
func (m appModel) navigate(path string) (tea.Model, tea.Cmd) {
	r := parseRoute(path)
	if r.kind == routeList {
		m.route = r
		m.editor = nil
		m.pending = nil
		return m, nil
	}

	rec, err := m.state.SelectForEdit(r.id)
	switch {
	case errors.Is(err, service.ErrStillLoading):
		m.pending = &r
		return m, nil
	case err != nil:
		m.logger.Debug().Str("path", path).Msg("no record for editor path, showing list")
		m.route = route{kind: routeList}
		m.editor = nil
		return m, nil
	}

	m.sessions++
	var ed editorModel
	if rec.IsNew() {
		ed = newEditorModel(m.sessions, nil)
	} else {
		ed = newEditorModel(m.sessions, &rec)
	}

	m.route = r
	m.editor = &ed
	m.pending = nil
	return m, nil
}

func (m appModel) applyLoaded(msg recordsLoadedMsg) (tea.Model, tea.Cmd) {
	m.state = m.state.Loaded(msg.records, msg.err)
	m.list.reloading = false
	m.list = m.list.clamp(m.state)

	if m.pending != nil {
		return m.navigate(m.pending.path())
	}
	return m, nil
}

func (m appModel) applyDecrypt(msg decryptDoneMsg) (tea.Model, tea.Cmd) {
	if m.editor == nil || m.editor.session != msg.session {
		return m, nil
	}

	ed := *m.editor
	ed.state = ed.state.CompleteDecrypt(msg.generation, msg.plaintext, msg.err)
	ed = ed.syncBody()
	m.editor = &ed
	return m, nil
}

// applySave closes the editor and reloads the list once the newest save
// succeeded.
func (m appModel) applySave(msg saveDoneMsg) (tea.Model, tea.Cmd) {
	if m.editor == nil || m.editor.session != msg.session {
		return m, nil
	}

	ed := *m.editor
	wasClosed := ed.state.Closed()
	ed.state = ed.state.CompleteSubmit(msg.generation, service.ErrorMessage(msg.err))
	m.editor = &ed

	if ed.state.Closed() && !wasClosed {
		m.route = route{kind: routeList}
		m.editor = nil
		m.list.reloading = true
		return m, tea.Batch(m.list.spinner.Tick, cmdLoad(m.ctx, m.manager))
	}
	return m, nil
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.state.Records)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		rec, ok := m.list.current(m.state)
		if !ok {
			return m, nil
		}
		return m, cmdNavigate(EditorPath(rec.IDString()))
	case key.Matches(keyMsg, keys.newItem):
		return m, cmdNavigate(newRecordPath())
	case key.Matches(keyMsg, keys.reload):
		if m.state.Loading || m.list.reloading {
			return m, nil
		}
		m.list.reloading = true
		return m, tea.Batch(m.list.spinner.Tick, cmdLoad(m.ctx, m.manager))
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editor == nil {
		return m, nil
	}
	ed := *m.editor

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			ed.state = ed.state.Cancel()
			m.editor = &ed
			return m, cmdNavigate(ListPath)
		case key.Matches(keyMsg, keys.decrypt):
			next, gen, err := ed.state.BeginDecrypt()
			if err != nil {
				return m, nil
			}
			ed.state = next
			m.editor = &ed
			return m, cmdDecrypt(m.ctx, m.manager, next.WorkingCopy(), ed.session, gen)
		case key.Matches(keyMsg, keys.save):
			return m.submit(false)
		case key.Matches(keyMsg, keys.copy):
			return m, cmdCopyToClipboard(ed.body.Value())
		}
	}

	if ed.state.Busy() {
		return m, nil
	}

	var cmd tea.Cmd
	before := ed.body.Value()
	ed.body, cmd = ed.body.Update(msg)
	if after := ed.body.Value(); after != before {
		if next, err := ed.state.ChangeBody(after); err == nil {
			ed.state = next
		}
	}
	m.editor = &ed
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		return m.submit(true)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
	}
	return m, nil
}

func (m appModel) submit(allowPlaintext bool) (tea.Model, tea.Cmd) {
	if m.editor == nil {
		return m, nil
	}
	ed := *m.editor

	next, rec, gen, err := ed.state.BeginSubmit(allowPlaintext)
	switch {
	case errors.Is(err, editor.ErrPlaintextNotConfirmed):
		m.showConfirm = true
		return m, nil
	case err != nil:
		return m, nil
	}

	if next.Body().IsPlaintext() {
		m.logger.Warn().Int64("id", rec.ID).Msg("saving decrypted plaintext as record body")
	}

	ed.state = next
	m.editor = &ed
	return m, cmdSave(m.ctx, m.manager, rec, ed.session, gen)
}

func (m *appModel) setStatus(status string) {
	m.list.status = status
	if m.editor != nil {
		ed := *m.editor
		ed.status = status
		m.editor = &ed
	}
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}
