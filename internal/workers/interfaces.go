// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the record service's background jobs.
// It defines the Worker interface and a Workers aggregate that runs every
// worker until the service shuts down.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// RecordCounter reports how many records are stored.
type RecordCounter interface {
	Count(ctx context.Context) (int64, error)
}
