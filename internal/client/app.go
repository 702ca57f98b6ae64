// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-record-vault/internal/logger"
)

var ErrNilUI = errors.New("client ui is not configured")

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits or SIGINT/SIGTERM/SIGQUIT arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("ui stopped: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
