// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/utils"
	"github.com/MKhiriev/go-record-vault/models"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.RecordService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if records == nil {
		records = []models.Record{}
	}

	if _, err = utils.WriteJSON(w, records, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error writing response")
	}
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.NewRecord
	if err := utils.DecodeJSON(r, &body); err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("invalid JSON was passed")
		writeStatus(w, badJSONStatus())
		return
	}
	body.ID = 0

	created, err := h.services.RecordService.Create(r.Context(), body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", created.ID).Msg("record created")
	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("error writing response")
	}
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := recordID(r)
	if !ok {
		writeStatus(w, notFoundStatus())
		return
	}

	var body models.NewRecord
	if err := utils.DecodeJSON(r, &body); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("invalid JSON was passed")
		writeStatus(w, badJSONStatus())
		return
	}
	body.ID = id

	updated, err := h.services.RecordService.Update(r.Context(), body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", updated.ID).Msg("record updated")
	if _, err = utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("error writing response")
	}
}

func (h *Handler) getDecryptedRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := recordID(r)
	if !ok {
		writeStatus(w, notFoundStatus())
		return
	}

	decrypted, err := h.services.RecordService.GetDecrypted(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, decrypted, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getDecryptedRecord").Msg("error writing response")
	}
}

// recordID parses the {id} path parameter. Ids are positive.
func recordID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
