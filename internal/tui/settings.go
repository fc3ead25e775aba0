// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-weather-term/internal/app"
	"github.com/MKhiriev/go-weather-term/internal/service"
	"github.com/MKhiriev/go-weather-term/models"
)

type settingsAction struct {
	label  string
	field  string // toggled preference field, empty for presets
	preset string
}

var settingsActions = []settingsAction{
	{label: "Temperature", field: service.PrefTemperature},
	{label: "Wind speed", field: service.PrefWindSpeed},
	{label: "Pressure", field: service.PrefPressure},
	{label: "Visibility", field: service.PrefVisibility},
	{label: "Precipitation", field: service.PrefPrecipitation},
	{label: "Use metric preset", preset: models.PresetMetric},
	{label: "Use imperial preset", preset: models.PresetImperial},
}

type settingsModel struct {
	idx    int
	status string
	saving bool
}

func (m settingsModel) selected() settingsAction {
	return settingsActions[m.idx]
}

func unitValue(p models.UnitPreferences, field string) string {
	switch field {
	case service.PrefTemperature:
		return p.Temperature
	case service.PrefWindSpeed:
		return p.WindSpeed
	case service.PrefPressure:
		return p.Pressure
	case service.PrefVisibility:
		return p.Visibility
	case service.PrefPrecipitation:
		return p.Precipitation
	}
	return ""
}

func (m settingsModel) View(prefs models.UnitPreferences, keySource models.KeySource, keyErr error) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Preset: %s\n\n", prefs.Preset))
	for i, a := range settingsActions {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		if a.field != "" {
			b.WriteString(fmt.Sprintf("%s %-15s %s\n", cursor, a.label, unitValue(prefs, a.field)))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, a.label))
	}

	b.WriteString("\nAPI key: ")
	if keyErr != nil {
		b.WriteString(warnStyle.Render("missing"))
		b.WriteString("\n\n")
		b.WriteString(app.MsgMissingAPIKey)
	} else {
		b.WriteString(string(keySource))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage("SETTINGS", b.String(), "enter: toggle", "↑/↓: navigate", "x: clear history", "esc: back")
}
