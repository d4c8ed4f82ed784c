// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/MKhiriev/go-post-client/internal/service"
	"github.com/MKhiriev/go-post-client/internal/session"
	"github.com/MKhiriev/go-post-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the terminal interface.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    log.GetChildLogger("tui"),
	}
}

// Run blocks until the user quits or ctx is cancelled. Session changes made
// anywhere (including the background watcher) are forwarded to the program.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.services.Session.Subscribe(func(state session.State) {
		program.Send(sessionChangedMsg{state: state})
	})
	defer unsubscribe()

	t.logger.Info().Msg("tui started")
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	t.logger.Info().Msg("tui stopped")
	return nil
}
