// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/metrics"
)

const defaultStatsInterval = 30 * time.Second

type recordStatsWorker struct {
	counter  RecordCounter
	metrics  *metrics.Metrics
	interval time.Duration
	logger   *logger.Logger
}

// NewRecordStatsWorker publishes the stored record count on start and then
// every interval. A non-positive interval falls back to 30 seconds.
func NewRecordStatsWorker(counter RecordCounter, m *metrics.Metrics, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultStatsInterval
	}

	return &recordStatsWorker{
		counter:  counter,
		metrics:  m,
		interval: interval,
		logger:   log,
	}
}

func (w *recordStatsWorker) Run(ctx context.Context) {
	w.refresh(ctx)

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.refresh(ctx)
		}
	}
}

func (w *recordStatsWorker) refresh(ctx context.Context) {
	count, err := w.counter.Count(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Str("func", "recordStatsWorker.refresh").Msg("failed to count records")
		}
		return
	}

	w.metrics.SetStoredRecords(count)
}
