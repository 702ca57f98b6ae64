// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	recordsRoute   = "/data"
	recordRoute    = "/data/{id}"
	decryptedRoute = "/data/{id}/decrypted"
	versionRoute   = "/api/version"
	metricsRoute   = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get(recordsRoute, h.listRecords)
	router.Post(recordsRoute, h.createRecord)
	router.Put(recordRoute, h.updateRecord)
	router.Get(decryptedRoute, h.getDecryptedRecord)

	router.Get(versionRoute, h.getServerVersion)
	router.Method("GET", metricsRoute, h.metrics.Handler())

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}
