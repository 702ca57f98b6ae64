// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-record-vault/internal/crypto"
	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/service"
	"github.com/MKhiriev/go-record-vault/internal/store"
	"github.com/MKhiriev/go-record-vault/internal/utils"
	"github.com/MKhiriev/go-record-vault/internal/validators"
	"github.com/MKhiriev/go-record-vault/models"
)

const (
	msgRecordNotFound    = "record not found"
	msgInvalidJSON       = "invalid JSON was passed"
	msgInvalidGzip       = "invalid gzip body"
	msgApplicationError  = "An application error occurred: "
	msgValidationFailure = "Validation failed for object='record'. Error count: %d"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidRecord: http.StatusBadRequest,
	service.ErrRecordNotFound:   http.StatusNotFound,
	store.ErrRecordNotFound:     http.StatusNotFound,

	crypto.ErrEncrypt:          http.StatusInternalServerError,
	crypto.ErrDecrypt:          http.StatusInternalServerError,
	crypto.ErrPlaintextTooLong: http.StatusInternalServerError,

	store.ErrRecordNotSaved:   http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// statusFromServiceError builds the status object sent for err.
func statusFromServiceError(err error) models.ServiceStatus {
	code := statusFromError(err)

	switch code {
	case http.StatusBadRequest:
		var fieldErrors *validators.FieldErrors
		if errors.As(err, &fieldErrors) {
			return models.ServiceStatus{
				Status:  code,
				Error:   http.StatusText(code),
				Errors:  fieldErrors.Errors,
				Message: fmt.Sprintf(msgValidationFailure, len(fieldErrors.Errors)),
			}
		}
		return badRequestStatus(err.Error())
	case http.StatusNotFound:
		return notFoundStatus()
	default:
		return models.ServiceStatus{Status: code, Message: msgApplicationError + err.Error()}
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromServiceError(err)

	log := logger.FromRequest(r)
	if status.Status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status.Status).Msg("request rejected")
	}

	writeStatus(w, status)
}

func writeStatus(w http.ResponseWriter, status models.ServiceStatus) {
	_, _ = utils.WriteJSON(w, status, status.Status)
}

func notFoundStatus() models.ServiceStatus {
	return models.ServiceStatus{
		Status:  http.StatusNotFound,
		Error:   http.StatusText(http.StatusNotFound),
		Message: msgRecordNotFound,
	}
}

func badJSONStatus() models.ServiceStatus {
	return badRequestStatus(msgInvalidJSON)
}

func badRequestStatus(message string) models.ServiceStatus {
	return models.ServiceStatus{
		Status:  http.StatusBadRequest,
		Error:   http.StatusText(http.StatusBadRequest),
		Message: message,
	}
}
