// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the record service view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage
	Workers Workers
}

// GetServerConfig builds and validates the record service config from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
		Workers: cfg.Workers,
	}

	return serverCfg, serverCfg.validate()
}

// HasKeys reports whether an RSA key pair was configured.
func (cfg *ServerConfig) HasKeys() bool {
	return cfg.App.PublicKey != "" && cfg.App.PrivateKey != ""
}
