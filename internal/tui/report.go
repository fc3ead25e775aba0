// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

const (
	defaultReportWidth  = 76
	defaultReportHeight = 18
)

type reportModel struct {
	kind     reportKind
	location string
	content  string
	loading  bool
	status   string
	spinner  spinner.Model
	viewport viewport.Model
}

func newReportModel() reportModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return reportModel{
		spinner:  s,
		viewport: viewport.New(defaultReportWidth, defaultReportHeight),
	}
}

func (m *reportModel) setContent(text string) {
	m.content = text
	m.viewport.SetContent(text)
	m.viewport.GotoTop()
}

func (m *reportModel) resize(width, height int) {
	// page chrome: padding, title, dividers and help lines
	if w := width - 8; w > 20 {
		m.viewport.Width = w
	}
	if h := height - 10; h > 5 {
		m.viewport.Height = h
	}
}

func (m reportModel) View() string {
	var data string
	switch {
	case m.loading:
		data = m.spinner.View() + " Loading weather data for " + m.location + "...\n\nPlease wait while we fetch the latest weather information."
	case m.content == "":
		data = "No weather data to display.\n\nSelect \"Enter Location\" from the menu to set your location,\nthen choose a report."
	default:
		data = m.viewport.View()
	}

	if m.status != "" {
		data += "\n\n" + m.status
	}

	return renderPage(strings.ToUpper(m.kind.title()), data, "↑/↓: scroll", "c: copy", "r: refresh", "esc: back")
}
