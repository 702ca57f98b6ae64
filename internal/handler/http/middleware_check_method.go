// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// routeNotFound answers unknown paths and known paths requested with a
// method they do not serve alike, so unsupported methods get 404 rather
// than 405.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	status := notFoundStatus()
	status.Message = "no route for " + r.Method + " " + r.URL.Path
	writeStatus(w, status)
}
