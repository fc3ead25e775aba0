// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-weather-term/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const historyShown = 5

type locationModel struct {
	input      textinput.Model
	history    []models.LocationHistoryEntry
	historyIdx int
}

func newLocationModel() locationModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. London, New York, Tokyo"
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "> "
	return locationModel{input: ti, historyIdx: -1}
}

// cycleHistory fills the input with the next recent location.
func (m *locationModel) cycleHistory() {
	n := min(len(m.history), historyShown)
	if n == 0 {
		return
	}
	m.historyIdx = (m.historyIdx + 1) % n
	m.input.SetValue(m.history[m.historyIdx].Location)
	m.input.CursorEnd()
}

func (m locationModel) View() string {
	var b strings.Builder

	b.WriteString("Enter a city name, region or postcode:\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.history) > 0 {
		b.WriteString("\nRecent locations:\n")
		for i, e := range m.history {
			if i == historyShown {
				break
			}
			cursor := " "
			if i == m.historyIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, truncate(e.Location, 50)))
		}
	}

	return renderPage("ENTER LOCATION", strings.TrimRight(b.String(), "\n"), "enter: confirm", "tab: recent location", "esc: back")
}
