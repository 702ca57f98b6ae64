// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the REST transport of the record service.
//
// Routes live under /data. Requests pass through panic recovery, trace id
// propagation, access logging with request metrics and gzip before they
// reach the handlers. Service errors are mapped to the JSON status objects
// the record client understands.
package http
