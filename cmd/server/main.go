// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-record-vault/internal/config"
	"github.com/MKhiriev/go-record-vault/internal/crypto"
	"github.com/MKhiriev/go-record-vault/internal/handler"
	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/metrics"
	"github.com/MKhiriev/go-record-vault/internal/server"
	"github.com/MKhiriev/go-record-vault/internal/service"
	"github.com/MKhiriev/go-record-vault/internal/store"
	"github.com/MKhiriev/go-record-vault/internal/workers"
	"github.com/MKhiriev/go-record-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Record Vault server: %s\n", buildInfo)

	log := logger.NewLogger("record-vault-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = orNA(buildInfo.BuildVersion())
	}

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func run(cfg *config.ServerConfig, log *logger.Logger) error {
	ctx := context.Background()

	keys, err := loadKeys(cfg, log)
	if err != nil {
		return err
	}
	cipher, err := crypto.NewRSACipher(keys)
	if err != nil {
		return fmt.Errorf("error creating cipher: %w", err)
	}

	repositories, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating repositories: %w", err)
	}
	defer func() {
		if closeErr := repositories.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing repositories")
		}
	}()

	m := metrics.New(nil)

	services, err := service.NewServices(repositories, cipher, cfg.App, m, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	jobs := workers.NewWorkers(
		workers.NewRecordStatsWorker(repositories.RecordRepository, m, cfg.Workers.StatsInterval, log),
	)

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}

// loadKeys returns the configured key pair, or a fresh one that lives only
// as long as the process.
func loadKeys(cfg *config.ServerConfig, log *logger.Logger) (crypto.KeyPair, error) {
	if cfg.HasKeys() {
		return crypto.KeyPair{PublicKey: cfg.App.PublicKey, PrivateKey: cfg.App.PrivateKey}, nil
	}

	log.Warn().Msg("no RSA keys configured, generating an ephemeral key pair; stored records will not be decryptable after restart")
	keys, err := crypto.GenerateKeyPair(crypto.DefaultKeyBits)
	if err != nil {
		return crypto.KeyPair{}, fmt.Errorf("error generating keys: %w", err)
	}
	return keys, nil
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
