// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied after all sources were merged.
const (
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultServerAddress  = "localhost:8080"
	DefaultDSN            = "file:records.db?_foreign_keys=on"
	DefaultStatsInterval  = 30 * time.Second
	DefaultServerTimeout  = 30 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultServerAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Workers.StatsInterval == 0 {
		cfg.Workers.StatsInterval = DefaultStatsInterval
	}
}
