// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus metrics of the record service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Crypto operation labels.
const (
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"

	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics provides observability for the record service. All methods are
// safe to call on a nil receiver.
type Metrics struct {
	// HTTP requests by route pattern, method and status code
	RequestsTotal *prometheus.CounterVec

	// HTTP request latency by route pattern and method
	RequestDuration *prometheus.HistogramVec

	// Encrypt and decrypt calls by outcome
	CryptoOperations *prometheus.CounterVec

	// Rejected record bodies
	ValidationFailures prometheus.Counter

	// Number of stored records, refreshed by a background job
	StoredRecords prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New creates the metrics and registers them with reg. A nil reg uses a
// fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "record_vault_http_requests_total",
			Help: "Total HTTP requests by route, method and status code",
		}, []string{"route", "method", "code"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "record_vault_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and method",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "method"}),

		CryptoOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "record_vault_crypto_operations_total",
			Help: "Total RSA encrypt and decrypt operations by outcome",
		}, []string{"op", "result"}),

		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "record_vault_validation_failures_total",
			Help: "Total record bodies rejected by validation",
		}),

		StoredRecords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "record_vault_stored_records",
			Help: "Number of records currently stored",
		}),

		gatherer: reg,
	}
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(route, method string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.RequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// IncrementCrypto records the outcome of an encrypt or decrypt call.
func (m *Metrics) IncrementCrypto(op string, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.CryptoOperations.WithLabelValues(op, result).Inc()
}

// IncrementValidationFailures records a rejected record body.
func (m *Metrics) IncrementValidationFailures() {
	if m != nil {
		m.ValidationFailures.Inc()
	}
}

// SetStoredRecords publishes the current record count.
func (m *Metrics) SetStoredRecords(n int64) {
	if m != nil {
		m.StoredRecords.Set(float64(n))
	}
}

// Handler serves the registered metrics in the Prometheus text format.
// Compression is left to the HTTP middleware.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{DisableCompression: true})
}
