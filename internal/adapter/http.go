// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-record-vault/internal/config"
	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/utils"
	"github.com/MKhiriev/go-record-vault/models"
)

const recordsPath = "/data"

type httpRecordAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRecordAdapter constructs the HTTP implementation of [RecordAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and applies the
// request timeout (zero means none).
//
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPRecordAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RecordAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithTraceIDs(utils.NewUUIDGenerator())
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpRecordAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Request implements [DataAccessClient].
func (h *httpRecordAdapter) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	start := time.Now()

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).
			Str("method", method).
			Str("path", path).
			Dur("duration", time.Since(start)).
			Msg("record service request failed")
		return nil, newTransportError(fmt.Errorf("%s %s request: %w", method, path, err))
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
		Dur("duration", time.Since(start)).
		Msg("record service request")

	return parseBody(resp)
}

// ListRecords implements [RecordAdapter].
func (h *httpRecordAdapter) ListRecords(ctx context.Context) ([]models.Record, error) {
	raw, err := h.Request(ctx, http.MethodGet, recordsPath, nil)
	if err != nil {
		return nil, err
	}

	records := make([]models.Record, 0)
	if err = decodeInto(raw, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// CreateRecord implements [RecordAdapter].
func (h *httpRecordAdapter) CreateRecord(ctx context.Context, record models.Record) (models.SaveResponse, error) {
	raw, err := h.Request(ctx, http.MethodPost, recordsPath, models.NewRecord{Data: record.Data})
	if err != nil {
		return models.SaveResponse{}, err
	}

	var resp models.SaveResponse
	if err = decodeInto(raw, &resp); err != nil {
		return models.SaveResponse{}, err
	}

	return resp, nil
}

// UpdateRecord implements [RecordAdapter].
func (h *httpRecordAdapter) UpdateRecord(ctx context.Context, record models.Record) (models.SaveResponse, error) {
	raw, err := h.Request(ctx, http.MethodPut, recordPath(record.ID), models.NewRecord{ID: record.ID, Data: record.Data})
	if err != nil {
		return models.SaveResponse{}, err
	}

	var resp models.SaveResponse
	if err = decodeInto(raw, &resp); err != nil {
		return models.SaveResponse{}, err
	}

	return resp, nil
}

// GetDecryptedRecord implements [RecordAdapter].
func (h *httpRecordAdapter) GetDecryptedRecord(ctx context.Context, id int64) (models.Record, error) {
	raw, err := h.Request(ctx, http.MethodGet, recordPath(id)+"/decrypted", nil)
	if err != nil {
		return models.Record{}, err
	}

	var resp models.SaveResponse
	if err = decodeInto(raw, &resp); err != nil {
		return models.Record{}, err
	}
	if resp.Failed() {
		return models.Record{}, &RejectedError{Status: resp.Status, Message: resp.FirstMessage()}
	}

	return resp.Record, nil
}

func recordPath(id int64) string {
	return recordsPath + "/" + strconv.FormatInt(id, 10)
}
