// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] before it is projected into
// a client or server view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidTimeouts)
	}
	if cfg.Workers.StatsInterval < 0 {
		return fmt.Errorf("%w: negative stats interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if (cfg.App.PublicKey == "") != (cfg.App.PrivateKey == "") {
		return fmt.Errorf("%w: rsa public and private keys must be set together", ErrInvalidAppConfigs)
	}

	if cfg.Workers.StatsInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
