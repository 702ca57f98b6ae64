// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the record client's process lifecycle.
//
// It runs the terminal UI until the user quits or the process receives a
// stop signal.
package client
