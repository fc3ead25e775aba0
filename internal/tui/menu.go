// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type menuItem int

const (
	itemEnterLocation menuItem = iota
	itemCurrentWeather
	itemAirQuality
	itemForecast
	itemAstronomy
	itemSettings
	itemAbout
	itemExit
)

var menuLabels = []string{
	"Enter Location",
	"Current Weather",
	"Air Quality",
	"Forecast",
	"Astronomy",
	"Settings",
	"About",
	"Exit",
}

type menuModel struct {
	idx    int
	status string
}

func (m menuModel) selected() menuItem {
	return menuItem(m.idx)
}

func (m menuModel) View(location, units string, keyMissing bool) string {
	var b strings.Builder

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(menuLabels))) + 2
	actionColWidth := lipgloss.Width("Action")
	for _, item := range menuLabels {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString("Location: ")
	b.WriteString(valueOrNA(location))
	b.WriteString("  │  Units: ")
	b.WriteString(units)
	b.WriteString("\n")
	if keyMissing {
		b.WriteString(warnStyle.Render("No API key: weather lookups are disabled (see Settings)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range menuLabels {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage("WAIT: WEATHER APP IN TERMINAL", strings.TrimRight(b.String(), "\n"), "enter: select", "↑/↓: navigate", "q: quit")
}
