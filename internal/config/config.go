// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// record client and the record service. It is populated by merging values
// from environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the service's RSA keys and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the record service's database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the record service's listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the record service: its base URL
	// and the outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings of the record service.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the storage backends used by the record service.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level values.
type App struct {
	// PublicKey is the base64-encoded X.509 (PKIX) RSA public key used to
	// encrypt record bodies.
	// Env: APP_RSA_PUBLIC_KEY
	PublicKey string `env:"RSA_PUBLIC_KEY"`

	// PrivateKey is the base64-encoded PKCS#8 RSA private key used to
	// decrypt record bodies. Must be kept confidential.
	// Env: APP_RSA_PRIVATE_KEY
	PrivateKey string `env:"RSA_PRIVATE_KEY"`

	// Version is exposed in the service's startup log.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings of the record service.
type Server struct {
	// HTTPAddress is the TCP address the service listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request ("30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// DSN selects the driver: "postgres://..." opens PostgreSQL through
	// pgx, anything else is treated as a SQLite file DSN.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client's connection settings.
type Adapter struct {
	// HTTPAddress is the base URL of the record service. A missing scheme
	// is completed with "http://".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request. Zero disables the
	// deadline.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// StatsInterval is how often the record service refreshes its stored
	// record gauge.
	// Env: WORKERS_STATS_INTERVAL
	StatsInterval time.Duration `env:"STATS_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
