// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-post-client/internal/logger"
)

var _ Client = (*App)(nil)

// App owns the process lifecycle of the client.
type App struct {
	session SessionRestorer
	ui      UI
	workers BackgroundWorkers
	storage io.Closer
	logger  *logger.Logger
}

func NewApp(session SessionRestorer, ui UI, workers BackgroundWorkers, storage io.Closer, log *logger.Logger) (*App, error) {
	if session == nil || ui == nil {
		return nil, errors.New("client: session and ui are required")
	}

	return &App{
		session: session,
		ui:      ui,
		workers: workers,
		storage: storage,
		logger:  log.GetChildLogger("client"),
	}, nil
}

// Run restores the session, starts the workers and blocks in the UI. The
// workers are stopped and the storage closed on every exit path.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if a.storage == nil {
			return
		}
		if closeErr := a.storage.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("failed to close local storage")
			err = errors.Join(err, fmt.Errorf("close storage: %w", closeErr))
		}
	}()

	if err = a.session.Initialize(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.workers != nil {
		a.workers.Start(ctx)
		defer a.workers.Stop()
	}

	a.logger.Info().Msg("client started")
	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
