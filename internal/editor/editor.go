// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package editor holds the editing state of a single record.
//
// An [Editor] is a value. Every transition returns the next Editor and
// leaves the receiver as it was, so the caller decides when the new state
// takes effect. Asynchronous work (decrypt, save) is split into a Begin
// step that hands out a generation number and a Complete step that only
// applies a result carrying the current generation. Results that arrive
// after a newer request was started, or after the editor was closed, are
// dropped.
package editor

import (
	"errors"

	"github.com/MKhiriev/go-record-vault/internal/service"
	"github.com/MKhiriev/go-record-vault/models"
)

var (
	// ErrInvalidTransition is returned when an action is not allowed in the
	// current phase.
	ErrInvalidTransition = errors.New("invalid editor transition")

	// ErrPlaintextNotConfirmed is returned by BeginSubmit when the body
	// holds decrypted plaintext and the user has not agreed to store it.
	ErrPlaintextNotConfirmed = errors.New("saving decrypted plaintext requires confirmation")
)

type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseReady
	PhaseEditing
	PhaseDecrypting
	PhaseSubmitting
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseReady:
		return "ready"
	case PhaseEditing:
		return "editing"
	case PhaseDecrypting:
		return "decrypting"
	case PhaseSubmitting:
		return "submitting"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Editor is the edit session of one record. The zero value is
// uninitialized; use [New].
type Editor struct {
	phase        Phase
	resumePhase  Phase
	recordID     int64
	body         models.Body
	errorMessage string
	generation   uint64
}

// New starts an edit session on a copy of existing, or on an empty record
// when existing is nil.
func New(existing *models.Record) Editor {
	e := Editor{phase: PhaseReady, body: models.Body{Kind: models.BodyCiphertext}}
	if existing != nil {
		e.recordID = existing.ID
		e.body.Value = existing.Data
	}
	return e
}

func (e Editor) Phase() Phase {
	return e.phase
}

// WorkingCopy returns the record as it would be saved now.
func (e Editor) WorkingCopy() models.Record {
	return models.Record{ID: e.recordID, Data: e.body.Value}
}

func (e Editor) Body() models.Body {
	return e.body
}

// ErrorMessage is the text of the last failed decrypt or save. It is
// cleared by the next body change.
func (e Editor) ErrorMessage() string {
	return e.errorMessage
}

// Generation identifies the most recent decrypt or save request.
func (e Editor) Generation() uint64 {
	return e.generation
}

func (e Editor) Closed() bool {
	return e.phase == PhaseClosed
}

// Busy reports whether a decrypt or save is in flight.
func (e Editor) Busy() bool {
	return e.phase == PhaseDecrypting || e.phase == PhaseSubmitting
}

// ChangeBody replaces the body with text typed by the user. Edits to a
// decrypted body keep it tagged as plaintext.
func (e Editor) ChangeBody(value string) (Editor, error) {
	if e.phase != PhaseReady && e.phase != PhaseEditing {
		return e, ErrInvalidTransition
	}

	kind := models.BodyUserInput
	if e.body.IsPlaintext() {
		kind = models.BodyPlaintext
	}
	e.body = models.Body{Kind: kind, Value: value}
	e.errorMessage = ""
	e.phase = PhaseEditing
	return e, nil
}

// BeginDecrypt starts a decrypt request. The returned generation must be
// passed back to CompleteDecrypt.
func (e Editor) BeginDecrypt() (Editor, uint64, error) {
	if e.phase != PhaseReady && e.phase != PhaseEditing {
		return e, 0, ErrInvalidTransition
	}

	e.resumePhase = e.phase
	e.phase = PhaseDecrypting
	e.generation++
	return e, e.generation, nil
}

// CompleteDecrypt applies the result of the decrypt request gen. On
// success the body becomes the plaintext; on failure the body is kept and
// the error message is set.
func (e Editor) CompleteDecrypt(gen uint64, plaintext string, err error) Editor {
	if e.stale(gen) || e.phase != PhaseDecrypting {
		return e
	}

	if err != nil {
		e.errorMessage = service.ErrorMessage(err)
		e.phase = e.resumePhase
		return e
	}

	e.body = models.Body{Kind: models.BodyPlaintext, Value: plaintext}
	e.errorMessage = ""
	e.phase = PhaseEditing
	return e
}

// BeginSubmit starts a save request and returns the record to persist.
// A body holding decrypted plaintext is only submitted when allowPlaintext
// is set. Submitting again while a save is in flight is allowed; only the
// newest request's result is applied.
func (e Editor) BeginSubmit(allowPlaintext bool) (Editor, models.Record, uint64, error) {
	switch e.phase {
	case PhaseReady, PhaseEditing, PhaseSubmitting:
	default:
		return e, models.Record{}, 0, ErrInvalidTransition
	}

	if e.body.IsPlaintext() && !allowPlaintext {
		return e, models.Record{}, 0, ErrPlaintextNotConfirmed
	}

	e.phase = PhaseSubmitting
	e.generation++
	return e, e.WorkingCopy(), e.generation, nil
}

// CompleteSubmit applies the result of the save request gen. An empty
// message means the save succeeded and closes the editor.
func (e Editor) CompleteSubmit(gen uint64, message string) Editor {
	if e.stale(gen) || e.phase != PhaseSubmitting {
		return e
	}

	if message == "" {
		e.phase = PhaseClosed
		e.errorMessage = ""
		return e
	}

	e.errorMessage = message
	e.phase = PhaseEditing
	return e
}

// Cancel closes the editor and discards the working copy.
func (e Editor) Cancel() Editor {
	return Editor{phase: PhaseClosed, generation: e.generation}
}

func (e Editor) stale(gen uint64) bool {
	return e.phase == PhaseClosed || gen != e.generation
}
