// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-record-vault/internal/adapter"
	"github.com/MKhiriev/go-record-vault/internal/client"
	"github.com/MKhiriev/go-record-vault/internal/config"
	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/service"
	"github.com/MKhiriev/go-record-vault/internal/tui"
	"github.com/MKhiriev/go-record-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("record-vault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	recordAdapter, err := adapter.NewHTTPRecordAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create record adapter")
	}

	services := service.NewClientServices(recordAdapter, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	fmt.Printf("Record Vault client: %s\n", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
