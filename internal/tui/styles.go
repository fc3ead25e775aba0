// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

// ANSI palette indexes so the UI follows the terminal's own theme.
const (
	colorSky   = lipgloss.Color("6")
	colorSun   = lipgloss.Color("3")
	colorStorm = lipgloss.Color("9")
	colorMuted = lipgloss.Color("8")
)

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSky)
	ruleStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorSun)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorStorm)
	bodyStyle  = lipgloss.NewStyle().PaddingLeft(2)

	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorStorm).
			Padding(1, 2)
)
