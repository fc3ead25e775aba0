// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal interface on top of
// bubbletea: a main menu, location input, weather reports, settings and an
// about screen.
package tui

import (
	"context"

	"github.com/MKhiriev/go-weather-term/internal/logger"
	"github.com/MKhiriev/go-weather-term/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.Services
	keyErr   error
	logger   *logger.Logger
}

// New builds the TUI. keyErr is the key resolution error, if any; lookups
// are disabled and its message is shown instead.
func New(services *service.Services, keyErr error, logger *logger.Logger) *TUI {
	return &TUI{
		services: services,
		keyErr:   keyErr,
		logger:   logger,
	}
}

// Run blocks until the user exits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.keyErr)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui program failed")
		return err
	}
	return nil
}
