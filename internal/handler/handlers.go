// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers of the record service.
package handler

import (
	"github.com/MKhiriev/go-record-vault/internal/config"
	"github.com/MKhiriev/go-record-vault/internal/handler/http"
	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/metrics"
	"github.com/MKhiriev/go-record-vault/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, m, logger)}, nil
}
